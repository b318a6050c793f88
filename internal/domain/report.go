package domain

import "strings"

// ThemeReport holds the fields extracted from the up-to-three on-disk
// representations of a single theme. Absent fields are nil pointers or nil
// slices; absence means the file or key was not present, never an error.
type ThemeReport struct {
	Name            string   `db:"name" json:"name"`
	DescriptorTitle *string  `db:"descriptor_title" json:"descriptor_title,omitempty"`
	INITitle        *string  `db:"ini_title" json:"ini_title,omitempty"`
	TitleColor      []string `json:"title_color,omitempty"`
	ScreenColor     []string `json:"screen_color,omitempty"`
}

// FormatTriple renders a dialog color triple the way the source files write
// it, e.g. (BLACK,GREEN,ON). A nil triple renders as the given placeholder.
func FormatTriple(triple []string, placeholder string) string {
	if triple == nil {
		return placeholder
	}
	return "(" + strings.Join(triple, ",") + ")"
}

// FormatValue renders an optional string field, substituting the placeholder
// when the field is absent.
func FormatValue(value *string, placeholder string) string {
	if value == nil {
		return placeholder
	}
	return *value
}
