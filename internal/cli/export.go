package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"theme-parity/internal/export"
)

var (
	flagExportFormat string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the parity report",
	Long: `Export the collected reports for all discovered themes.

Formats:
  json      indented JSON with absent fields omitted
  markdown  a Markdown comparison table

Examples:
  parity export --format json -o parity.json
  parity export --format markdown`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "output format (json or markdown)")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if flagExportFormat != "json" && flagExportFormat != "markdown" {
		return fmt.Errorf("unknown format '%s': must be json or markdown", flagExportFormat)
	}

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

	reports, err := collectReports(s)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if flagExportOutput != "" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch flagExportFormat {
	case "json":
		err = export.WriteJSON(w, reports)
	case "markdown":
		err = export.WriteMarkdown(w, reports)
	}
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	if flagExportOutput != "" {
		fmt.Printf("✓ Exported %d themes to %s\n", len(reports), flagExportOutput)
	}

	return nil
}
