package export

import (
	"fmt"
	"io"
	"strings"

	"theme-parity/internal/domain"
)

// WriteMarkdown renders the collected reports as a Markdown table.
func WriteMarkdown(w io.Writer, reports []domain.ThemeReport) error {
	fmt.Fprintln(w, "# Theme Parity Report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Theme | Go Title | Bash Title | dialogrc Title | dialogrc Screen |")
	fmt.Fprintln(w, "|---|---|---|---|---|")

	for _, rep := range reports {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			escapeCell(rep.Name),
			escapeCell(domain.FormatValue(rep.DescriptorTitle, "—")),
			escapeCell(domain.FormatValue(rep.INITitle, "—")),
			escapeCell(domain.FormatTriple(rep.TitleColor, "—")),
			escapeCell(domain.FormatTriple(rep.ScreenColor, "—")),
		)
	}

	fmt.Fprintln(w)
	return nil
}

// theme values routinely contain '|' (tag syntax), which would break the table
func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
