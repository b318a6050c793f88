package themefile

import (
	"regexp"
	"strings"
)

// matches the first parenthesized group, e.g. (BLACK,GREEN,ON)
var parenGroupRegex = regexp.MustCompile(`\(([^)]+)\)`)

// ParseDialogRC parses a .dialogrc file into a field→triple map. Only lines
// containing both '=' and '(' are considered; the value is the comma-split
// interior of the first parenthesized group on the right-hand side, stored
// verbatim without trimming the parts. Lines whose group never closes are
// skipped. A missing file yields an empty map.
func ParseDialogRC(path string) (map[string][]string, error) {
	colors := map[string][]string{}

	lines, found, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return colors, nil
	}

	for _, line := range lines {
		if !strings.Contains(line, "(") {
			continue
		}
		key, rest, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		match := parenGroupRegex.FindStringSubmatch(rest)
		if match == nil {
			continue
		}
		colors[key] = strings.Split(match[1], ",")
	}

	return colors, nil
}
