package cli

import (
	"errors"
	"fmt"
	"os"

	"theme-parity/internal/config"
	"theme-parity/internal/domain"
	"theme-parity/internal/report"
	"theme-parity/internal/theme"
)

// settings is the effective per-run configuration: the config file merged
// with any flag overrides.
type settings struct {
	cfg           *config.Config
	goThemesDir   string
	bashThemesDir string
	sortThemes    bool
	styles        *theme.Styles
}

func loadSettings() (*settings, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &settings{
		cfg:           cfg,
		goThemesDir:   cfg.GoThemesDir,
		bashThemesDir: cfg.BashThemesDir,
		sortThemes:    cfg.SortThemes,
	}

	if flagGoThemes != "" {
		s.goThemesDir = flagGoThemes
	}
	if flagBashThemes != "" {
		s.bashThemesDir = flagBashThemes
	}

	s.styles = outputStyles(cfg)

	return s, nil
}

// both roots must be known before any command can touch the filesystem
func (s *settings) validateRoots() error {
	if s.goThemesDir == "" || s.bashThemesDir == "" {
		return errors.New("theme roots not configured: pass --go-themes and --bash-themes, or set go_themes_dir and bash_themes_dir in " + config.GetConfigFile())
	}
	return nil
}

// the descriptor root must exist up front: the parser tolerates missing
// files, so a missing directory would otherwise be indistinguishable from
// every theme lacking a descriptor
func (s *settings) checkGoRoot() error {
	info, err := os.Stat(s.goThemesDir)
	if err != nil {
		return fmt.Errorf("go themes directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("go themes path %s is not a directory", s.goThemesDir)
	}
	return nil
}

// discovers themes and collects one report per theme
func collectReports(s *settings) ([]domain.ThemeReport, error) {
	names, err := report.DiscoverThemes(s.bashThemesDir, s.sortThemes)
	if err != nil {
		return nil, err
	}

	r := report.NewReporter(s.goThemesDir, s.bashThemesDir)
	reports := make([]domain.ThemeReport, 0, len(names))
	for _, name := range names {
		rep, err := r.Collect(name)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}

	return reports, nil
}

func outputStyles(cfg *config.Config) *theme.Styles {
	if flagPlain {
		return theme.PlainStyles()
	}

	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	themeObj, err := theme.GetTheme(themeName)
	if err != nil {
		themeObj = theme.GetDefaultTheme()
	}

	return theme.NewStyles(themeObj)
}
