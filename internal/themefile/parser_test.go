package themefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseDescriptor(t *testing.T) {
	t.Run("basic key value pairs", func(t *testing.T) {
		path := writeThemeFile(t, "basic.ds2theme", "Title = Hello\nSubtitle=World\n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Equal(t, "Hello", colors["Title"])
		assert.Equal(t, "World", colors["Subtitle"])
	})

	t.Run("strips surrounding quotes", func(t *testing.T) {
		path := writeThemeFile(t, "quoted.ds2theme",
			"Single='value1'\nDouble=\"value2\"\nSpaced =  'value3'  \n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Equal(t, "value1", colors["Single"])
		assert.Equal(t, "value2", colors["Double"])
		assert.Equal(t, "value3", colors["Spaced"])
	})

	t.Run("quote strip is a character-set trim", func(t *testing.T) {
		// an edge run of mixed quote characters is removed entirely
		path := writeThemeFile(t, "edges.ds2theme", `Key='"value"'`+"\n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Equal(t, "value", colors["Key"])
	})

	t.Run("splits on first equals only", func(t *testing.T) {
		path := writeThemeFile(t, "eq.ds2theme", "Title={{|white:black:U|}}=extra\n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Equal(t, "{{|white:black:U|}}=extra", colors["Title"])
	})

	t.Run("lines without equals are skipped", func(t *testing.T) {
		path := writeThemeFile(t, "noise.ds2theme", "just some text\n\nTitle=ok\n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Len(t, colors, 1)
		assert.Equal(t, "ok", colors["Title"])
	})

	t.Run("last duplicate key wins", func(t *testing.T) {
		path := writeThemeFile(t, "dup.ds2theme", "Title=first\nTitle=second\n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Equal(t, "second", colors["Title"])
	})

	t.Run("missing file yields empty map", func(t *testing.T) {
		colors, err := ParseDescriptor(filepath.Join(t.TempDir(), "absent.ds2theme"))
		require.NoError(t, err)
		assert.Empty(t, colors)
	})

	t.Run("tag format value survives intact", func(t *testing.T) {
		path := writeThemeFile(t, "tag.ds2theme", "Title='{{|white:black:U|}}'\n")

		colors, err := ParseDescriptor(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"Title": "{{|white:black:U|}}"}, colors)
	})
}

func TestParseINI(t *testing.T) {
	t.Run("comment lines are skipped", func(t *testing.T) {
		path := writeThemeFile(t, "theme.ini",
			"# this=is a comment\nTitle=\"${_W_}${_U_}\"\n#Another=comment\n")

		vals, err := ParseINI(path)
		require.NoError(t, err)

		assert.Len(t, vals, 1)
		assert.Equal(t, "${_W_}${_U_}", vals["Title"])
	})

	t.Run("same quote and duplicate semantics as descriptor", func(t *testing.T) {
		path := writeThemeFile(t, "theme.ini", "Key='one'\nKey=\"two\"\nplain line\n")

		vals, err := ParseINI(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"Key": "two"}, vals)
	})

	t.Run("missing file yields empty map", func(t *testing.T) {
		vals, err := ParseINI(filepath.Join(t.TempDir(), "theme.ini"))
		require.NoError(t, err)
		assert.Empty(t, vals)
	})
}

func TestParseDialogRC(t *testing.T) {
	t.Run("parenthesized triple", func(t *testing.T) {
		path := writeThemeFile(t, ".dialogrc", "screen_color = (BLACK,GREEN,ON)\n")

		colors, err := ParseDialogRC(path)
		require.NoError(t, err)

		assert.Equal(t, map[string][]string{"screen_color": {"BLACK", "GREEN", "ON"}}, colors)
	})

	t.Run("parts are split verbatim without trimming", func(t *testing.T) {
		path := writeThemeFile(t, ".dialogrc", "title_color = (WHITE, BLACK ,OFF)\n")

		colors, err := ParseDialogRC(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"WHITE", " BLACK ", "OFF"}, colors["title_color"])
	})

	t.Run("line without parentheses contributes nothing", func(t *testing.T) {
		path := writeThemeFile(t, ".dialogrc", "use_shadow = ON\nscreen_color=(A,B,C)\n")

		colors, err := ParseDialogRC(path)
		require.NoError(t, err)

		assert.Len(t, colors, 1)
		assert.Contains(t, colors, "screen_color")
	})

	t.Run("unclosed group is skipped", func(t *testing.T) {
		path := writeThemeFile(t, ".dialogrc", "broken = (A,B,C\n")

		colors, err := ParseDialogRC(path)
		require.NoError(t, err)

		assert.Empty(t, colors)
	})

	t.Run("first group wins when several are present", func(t *testing.T) {
		path := writeThemeFile(t, ".dialogrc", "k=(A,B,C) (D,E,F)\n")

		colors, err := ParseDialogRC(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B", "C"}, colors["k"])
	})

	t.Run("duplicate keys overwrite", func(t *testing.T) {
		path := writeThemeFile(t, ".dialogrc", "k=(A,B,C)\nk=(D,E,F)\n")

		colors, err := ParseDialogRC(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"D", "E", "F"}, colors["k"])
	})

	t.Run("missing file yields empty map", func(t *testing.T) {
		colors, err := ParseDialogRC(filepath.Join(t.TempDir(), ".dialogrc"))
		require.NoError(t, err)
		assert.Empty(t, colors)
	})
}
