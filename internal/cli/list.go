package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"theme-parity/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered theme names",
	Long:  `List the theme names discovered under the bash themes root.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if err := s.validateRoots(); err != nil {
		return err
	}

	names, err := report.DiscoverThemes(s.bashThemesDir, s.sortThemes)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No themes discovered.")
		return nil
	}

	fmt.Println()
	fmt.Println(s.styles.Header.Render(" Discovered Themes "))
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()

	return nil
}
