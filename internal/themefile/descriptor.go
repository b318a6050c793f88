package themefile

// ParseDescriptor parses a .ds2theme descriptor file into a field→value map.
// Lines without '=' are skipped, later duplicate keys overwrite earlier ones,
// and a missing file yields an empty map rather than an error.
func ParseDescriptor(path string) (map[string]string, error) {
	colors := map[string]string{}

	lines, found, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return colors, nil
	}

	for _, line := range lines {
		key, rest, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		colors[key] = unquote(rest)
	}

	return colors, nil
}
