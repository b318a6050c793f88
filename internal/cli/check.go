package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"theme-parity/internal/report"
)

var (
	flagSort   bool
	flagDetect bool
	flagWarn   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [theme...]",
	Short: "Print the side-by-side parity report",
	Long: `Print one report block per theme: the descriptor Title, the theme.ini Title,
and the .dialogrc title_color and screen_color triples. Fields absent from
their file render as ` + report.MissingMarker + `.

Without arguments, themes are discovered from the bash themes root; with
arguments, only the named themes are checked.

Examples:
  parity check
  parity check GreenScreen Amber
  parity check --detect --warn`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&flagSort, "sort", true, "sort discovered theme names")
	checkCmd.Flags().BoolVar(&flagDetect, "detect", false, "annotate the theme.ini Title with the raw color-variable detection")
	checkCmd.Flags().BoolVar(&flagWarn, "warn", false, "print a warning to stderr for each absent field")
}

// prints the report for the named or discovered themes
func runCheck(cmd *cobra.Command, args []string) error {
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

	names := args
	if len(names) == 0 {
		sorted := s.sortThemes
		if cmd.Flags().Changed("sort") {
			sorted = flagSort
		}
		names, err = report.DiscoverThemes(s.bashThemesDir, sorted)
		if err != nil {
			return err
		}
	}

	opts := []report.Option{
		report.WithStyles(s.styles),
		report.WithDetect(flagDetect),
	}
	if flagWarn {
		opts = append(opts, report.WithWarnFunc(func(themeName, message string) {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", themeName, message)
		}))
	}

	return report.NewReporter(s.goThemesDir, s.bashThemesDir, opts...).Run(names)
}
