package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"theme-parity/internal/config"
	"theme-parity/internal/theme"
)

var (
	flagGoThemes   string
	flagBashThemes string
	flagPlain      bool
)

var rootCmd = &cobra.Command{
	Use:   "parity",
	Short: "Compare theme definitions across the two theme systems",
	Long: `parity prints corresponding color-theme fields from the Go-side .ds2theme
descriptors and the legacy bash-side theme.ini/.dialogrc files, side by side,
for manual visual inspection. It makes no equivalence judgement.

Theme roots come from flags or from ~/.themeparity/config.yaml.`,
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagGoThemes, "go-themes", "", "directory containing <name>.ds2theme files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBashThemes, "bash-themes", "", "directory containing per-theme subdirectories (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "disable styled output")
}

func displayWelcome() {
	// load theme
	cfg, err := config.LoadConfig()
	if err != nil {
		// fallback to default
		cfg = config.GetDefaultConfig()
	}

	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	themeObj, err := theme.GetTheme(themeName)
	if err != nil {
		themeObj = theme.GetDefaultTheme()
	}

	styles := theme.NewStyles(themeObj)

	fmt.Println()
	fmt.Println(styles.Title.Render("Theme Parity Reporter"))
	fmt.Println(styles.Subtitle.Render("Side-by-side theme fields from both theme systems"))
	fmt.Println()
	fmt.Println("Run 'parity check' to print the report, or 'parity --help' for all commands.")
	fmt.Println()
}
