package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"theme-parity/internal/report"
	"theme-parity/internal/theme"
	"theme-parity/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse parity reports interactively",
	Long:  `Launch an interactive browser: discovered themes on the left, the selected theme's parity report on the right.`,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if err := s.validateRoots(); err != nil {
		return err
	}
	if err := s.checkGoRoot(); err != nil {
		return err
	}

	names, err := report.DiscoverThemes(s.bashThemesDir, s.sortThemes)
	if err != nil {
		return err
	}

	themeName := s.cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}
	appTheme, err := theme.GetTheme(themeName)
	if err != nil {
		appTheme = theme.GetDefaultTheme()
	}

	reporter := report.NewReporter(s.goThemesDir, s.bashThemesDir,
		report.WithStyles(theme.NewStyles(appTheme)))

	model := tui.NewBrowseModel(names, reporter, appTheme)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	return nil
}
