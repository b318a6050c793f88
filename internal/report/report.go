// Package report collects and prints side-by-side theme fields from the two
// theme systems for manual comparison. It makes no equivalence judgement.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"theme-parity/internal/domain"
	"theme-parity/internal/theme"
	"theme-parity/internal/themefile"
)

// MissingMarker is printed in place of a field that is absent from its file.
const MissingMarker = "<missing>"

// WarnFunc receives diagnostics about absent files or fields. It never
// affects report output.
type WarnFunc func(themeName, message string)

type Reporter struct {
	goThemesDir   string
	bashThemesDir string
	out           io.Writer
	styles        *theme.Styles
	warn          WarnFunc
	detect        bool
}

type Option func(*Reporter)

func WithOutput(w io.Writer) Option {
	return func(r *Reporter) { r.out = w }
}

func WithStyles(s *theme.Styles) Option {
	return func(r *Reporter) { r.styles = s }
}

func WithWarnFunc(fn WarnFunc) Option {
	return func(r *Reporter) { r.warn = fn }
}

// WithDetect annotates the INI title with the raw color-variable detection.
func WithDetect(enabled bool) Option {
	return func(r *Reporter) { r.detect = enabled }
}

func NewReporter(goThemesDir, bashThemesDir string, opts ...Option) *Reporter {
	r := &Reporter{
		goThemesDir:   goThemesDir,
		bashThemesDir: bashThemesDir,
		out:           os.Stdout,
		styles:        theme.PlainStyles(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Collect parses the three on-disk representations of the named theme and
// extracts the compared fields. Missing files and missing keys leave the
// corresponding fields absent; only real I/O failures return an error.
func (r *Reporter) Collect(name string) (*domain.ThemeReport, error) {
	goPath := filepath.Join(r.goThemesDir, name+".ds2theme")
	iniPath := filepath.Join(r.bashThemesDir, name, "theme.ini")
	rcPath := filepath.Join(r.bashThemesDir, name, ".dialogrc")

	goColors, err := themefile.ParseDescriptor(goPath)
	if err != nil {
		return nil, err
	}

	iniVals, err := themefile.ParseINI(iniPath)
	if err != nil {
		return nil, err
	}

	rcColors, err := themefile.ParseDialogRC(rcPath)
	if err != nil {
		return nil, err
	}

	rep := &domain.ThemeReport{Name: name}

	if title, ok := goColors["Title"]; ok {
		rep.DescriptorTitle = &title
	} else {
		r.warnf(name, "descriptor has no Title field (%s)", goPath)
	}

	if title, ok := iniVals["Title"]; ok {
		rep.INITitle = &title
	} else {
		r.warnf(name, "theme.ini has no Title field (%s)", iniPath)
	}

	if triple, ok := rcColors["title_color"]; ok {
		rep.TitleColor = triple
	} else {
		r.warnf(name, "dialogrc has no title_color entry (%s)", rcPath)
	}

	if triple, ok := rcColors["screen_color"]; ok {
		rep.ScreenColor = triple
	} else {
		r.warnf(name, "dialogrc has no screen_color entry (%s)", rcPath)
	}

	return rep, nil
}

// Check collects and prints one theme's report block.
func (r *Reporter) Check(name string) error {
	rep, err := r.Collect(name)
	if err != nil {
		return err
	}

	fmt.Fprint(r.out, r.Render(rep))
	return nil
}

// Run checks each named theme in order.
func (r *Reporter) Run(names []string) error {
	for _, name := range names {
		if err := r.Check(name); err != nil {
			return err
		}
	}
	return nil
}

// Render formats one report block: header, the four compared fields, and a
// blank separator line.
func (r *Reporter) Render(rep *domain.ThemeReport) string {
	var b strings.Builder

	header := fmt.Sprintf("--- Checking %s ---", r.styles.ThemeName.Render(rep.Name))
	b.WriteString(header)
	b.WriteString("\n")

	r.writeField(&b, "Go Title", domain.FormatValue(rep.DescriptorTitle, ""), rep.DescriptorTitle != nil)

	iniValue := domain.FormatValue(rep.INITitle, "")
	if r.detect && rep.INITitle != nil {
		detection := themefile.DetectColor(*rep.INITitle)
		iniValue += " " + r.styles.Detected.Render(fmt.Sprintf("[detected: %s]", detection))
	}
	r.writeField(&b, "Bash Title", iniValue, rep.INITitle != nil)

	r.writeField(&b, "Bash dialogrc Title", domain.FormatTriple(rep.TitleColor, ""), rep.TitleColor != nil)
	r.writeField(&b, "Bash dialogrc Screen", domain.FormatTriple(rep.ScreenColor, ""), rep.ScreenColor != nil)

	b.WriteString("\n")
	return b.String()
}

func (r *Reporter) writeField(b *strings.Builder, label, value string, found bool) {
	rendered := r.styles.Missing.Render(MissingMarker)
	if found {
		rendered = r.styles.Value.Render(value)
	}
	fmt.Fprintf(b, "%s: %s\n", r.styles.Label.Render(label), rendered)
}

func (r *Reporter) warnf(themeName, format string, args ...any) {
	if r.warn != nil {
		r.warn(themeName, fmt.Sprintf(format, args...))
	}
}
