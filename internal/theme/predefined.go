package theme

import "sort"

// DefaultTheme returns the standard theme
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Primary:   "#7C3AED",
		Secondary: "#2563EB",
		Success:   "#10B981",
		Error:     "#EF4444",
		Warning:   "#F59E0B",
		Info:      "#3B82F6",

		TextPrimary:   "#F9FAFB",
		TextSecondary: "#D1D5DB",
		TextMuted:     "#6B7280",

		BorderColor:  "#4B5563",
		SelectedBg:   "#374151",
		SelectedFg:   "#F9FAFB",
		HeaderBg:     "#1F2937",
		HeaderFg:     "#F9FAFB",
		Separator:    "#374151",
		HelpText:     "#9CA3AF",
		SubtitleText: "#9CA3AF",
	}
}

func darkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#BD93F9",
		Secondary: "#8BE9FD",
		Success:   "#50FA7B",
		Error:     "#FF5555",
		Warning:   "#F1FA8C",
		Info:      "#8BE9FD",

		TextPrimary:   "#F8F8F2",
		TextSecondary: "#BFBFBF",
		TextMuted:     "#6272A4",

		BorderColor:  "#44475A",
		SelectedBg:   "#44475A",
		SelectedFg:   "#F8F8F2",
		HeaderBg:     "#282A36",
		HeaderFg:     "#F8F8F2",
		Separator:    "#44475A",
		HelpText:     "#6272A4",
		SubtitleText: "#6272A4",
	}
}

func lightTheme() *Theme {
	return &Theme{
		Name: "light",

		Primary:   "#6D28D9",
		Secondary: "#1D4ED8",
		Success:   "#059669",
		Error:     "#DC2626",
		Warning:   "#D97706",
		Info:      "#2563EB",

		TextPrimary:   "#111827",
		TextSecondary: "#374151",
		TextMuted:     "#9CA3AF",

		BorderColor:  "#D1D5DB",
		SelectedBg:   "#E5E7EB",
		SelectedFg:   "#111827",
		HeaderBg:     "#F3F4F6",
		HeaderFg:     "#111827",
		Separator:    "#E5E7EB",
		HelpText:     "#6B7280",
		SubtitleText: "#6B7280",
	}
}

// GetPredefinedThemes returns all built-in themes keyed by name
func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"dark":    darkTheme(),
		"light":   lightTheme(),
	}
}

// GetThemeNames returns sorted built-in theme names
func GetThemeNames() []string {
	themes := GetPredefinedThemes()
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
