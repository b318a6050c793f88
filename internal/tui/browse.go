package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"theme-parity/internal/report"
	"theme-parity/internal/theme"
)

// BrowseModel is the model for the interactive parity browser: discovered
// theme names on the left, the selected theme's parity report on the right.
type BrowseModel struct {
	themes        []string
	reporter      *report.Reporter
	appTheme      *theme.Theme
	styles        *theme.Styles
	selectedIndex int
	current       string
	err           error
	width         int
	height        int
	quitting      bool
}

// NewBrowseModel creates a browse model over the given theme names.
func NewBrowseModel(themes []string, reporter *report.Reporter, appTheme *theme.Theme) BrowseModel {
	m := BrowseModel{
		themes:   themes,
		reporter: reporter,
		appTheme: appTheme,
		styles:   theme.NewStyles(appTheme),
		width:    100, // default width
		height:   30,  // default height
	}
	m.refresh()
	return m
}

func (m *BrowseModel) refresh() {
	if len(m.themes) == 0 {
		m.current = ""
		return
	}

	rep, err := m.reporter.Collect(m.themes[m.selectedIndex])
	if err != nil {
		m.err = err
		m.current = ""
		return
	}

	m.err = nil
	m.current = m.reporter.Render(rep)
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
			// re-read the theme files in place
			m.refresh()
			return m, nil
		}
	}

	return m, nil
}

func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	if len(m.themes) == 0 {
		return "No themes discovered. Check the configured theme roots.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	leftWidth := m.width / 3
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.appTheme.BorderColor)).
		Padding(1).
		Render(m.renderThemeList(leftWidth))

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.appTheme.BorderColor)).
		Padding(1).
		Render(m.renderReport())

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := m.styles.TUITitle.Render("Theme Parity Browser")
	subtitle := m.styles.TUISubtitle.Render("Compare theme fields across both systems")
	help := m.styles.TUIHelp.Render("↑/k: up • ↓/j: down • r: reload • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m BrowseModel) renderThemeList(width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.appTheme.Primary)).
		Render("Discovered Themes")

	b.WriteString(title)
	b.WriteString("\n\n")

	for i, themeName := range m.themes {
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
		}

		line := fmt.Sprintf("%s%s", prefix, themeName)

		if i == m.selectedIndex {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.appTheme.SelectedFg)).
				Background(lipgloss.Color(m.appTheme.SelectedBg)).
				Bold(true).
				Width(width - 4).
				Render(line)
		} else {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.appTheme.TextSecondary)).
				Width(width - 4).
				Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m BrowseModel) renderReport() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Failed to read theme files:\n%v", m.err))
	}
	return m.current
}
