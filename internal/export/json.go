package export

import (
	"encoding/json"
	"io"
	"time"

	"theme-parity/internal/domain"
)

type ReportExport struct {
	Version     string               `json:"version"`
	GeneratedAt time.Time            `json:"generated_at"`
	Themes      []domain.ThemeReport `json:"themes"`
}

// WriteJSON encodes the collected reports as indented JSON.
func WriteJSON(w io.Writer, reports []domain.ThemeReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ReportExport{
		Version:     "1.0",
		GeneratedAt: time.Now(),
		Themes:      reports,
	})
}
