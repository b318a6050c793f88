package themefile

import "strings"

// ParseINI parses a theme.ini file into a field→value map. The rules match
// ParseDescriptor with one addition: lines starting with '#' are comments and
// contribute nothing, even when they contain '='.
func ParseINI(path string) (map[string]string, error) {
	vals := map[string]string{}

	lines, found, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return vals, nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, rest, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		vals[key] = unquote(rest)
	}

	return vals, nil
}
