// Package themefile parses the flat-file theme formats produced by the two
// theme systems under comparison: single-file .ds2theme descriptors, per-theme
// theme.ini files, and dialog-style .dialogrc files.
package themefile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// quote characters stripped from value edges, as a character-set trim
const quoteCutset = `'"`

// reads all lines of the file at path. A missing file yields (nil, false, nil)
// so callers can treat absence as an empty result; any other failure is an error.
func readLines(path string) ([]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, true, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, true, nil
}

// splits a line on the first '=' and returns the trimmed key along with the
// raw right-hand side. ok is false for lines without '='.
func splitKeyValue(line string) (key, rest string, ok bool) {
	key, rest, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}

// trims surrounding whitespace, then an edge run of quote characters. This is
// deliberately a character-set trim, not a balanced-quote match: stray quote
// characters in the edge run are removed too.
func unquote(value string) string {
	return strings.Trim(strings.TrimSpace(value), quoteCutset)
}
