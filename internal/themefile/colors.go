package themefile

import "strings"

// Color is a symbolic terminal color name detected in a theme value.
type Color string

const (
	// ColorNone is the sentinel for values containing no recognized token.
	ColorNone Color = "NC"

	ColorWhite   Color = "white"
	ColorGreen   Color = "green"
	ColorCyan    Color = "cyan"
	ColorMagenta Color = "magenta"
	ColorYellow  Color = "yellow"
	ColorRed     Color = "red"
	ColorBlue    Color = "blue"
	ColorBlack   Color = "black"
)

// reverseToken flags reverse video in the variable-based theme format.
const reverseToken = "${_RV_}"

// first match wins, so the order here is significant
var colorTokens = []struct {
	token string
	color Color
}{
	{"${_W_}", ColorWhite},
	{"${_G_}", ColorGreen},
	{"${_C_}", ColorCyan},
	{"${_M_}", ColorMagenta},
	{"${_Y_}", ColorYellow},
	{"${_R_}", ColorRed},
	{"${_B_}", ColorBlue},
	{"${_K_}", ColorBlack},
}

// Detection is the result of scanning a theme value for color variables.
type Detection struct {
	Color    Color
	Reversed bool
}

// DetectColor scans a value from the variable-based theme format for known
// color-variable tokens and a reverse-video flag. The default report does not
// act on the result: resolving the effective rendered color against the dialog
// screen background was never finished in the system this tool diagnoses, so
// the detection stays display-only.
func DetectColor(value string) Detection {
	d := Detection{Color: ColorNone}
	for _, ct := range colorTokens {
		if strings.Contains(value, ct.token) {
			d.Color = ct.color
			break
		}
	}
	d.Reversed = strings.Contains(value, reverseToken)
	return d
}

// String renders the detection for display, e.g. "green" or "white (reverse)".
func (d Detection) String() string {
	if d.Reversed {
		return string(d.Color) + " (reverse)"
	}
	return string(d.Color)
}
