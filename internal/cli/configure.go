package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"theme-parity/internal/config"
	"theme-parity/internal/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent settings",
	Long: `Manage the settings stored in ` + "~/.themeparity/config.yaml" + `.

Examples:
  parity config show
  parity config roots /srv/ds2/themes /srv/legacy/themes
  parity config theme dark`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runConfigShow,
}

var configRootsCmd = &cobra.Command{
	Use:   "roots <go-themes-dir> <bash-themes-dir>",
	Short: "Persist the two theme roots",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigRoots,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Set the output theme for this tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigTheme,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configRootsCmd)
	configCmd.AddCommand(configThemeCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("go_themes_dir:   %s\n", orUnset(cfg.GoThemesDir))
	fmt.Printf("bash_themes_dir: %s\n", orUnset(cfg.BashThemesDir))
	fmt.Printf("theme_name:      %s\n", orUnset(cfg.ThemeName))
	fmt.Printf("sort_themes:     %t\n", cfg.SortThemes)
	fmt.Printf("db_path:         %s\n", cfg.DBPath)
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

func runConfigRoots(cmd *cobra.Command, args []string) error {
	if err := config.UpdateRoots(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to update roots: %w", err)
	}
	fmt.Println("✓ Theme roots saved")
	return nil
}

func runConfigTheme(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !theme.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found. Available: default, dark, light", themeName)
	}

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Printf("✓ Output theme set to '%s'\n", themeName)
	return nil
}
