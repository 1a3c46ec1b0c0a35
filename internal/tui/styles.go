package tui

import "github.com/charmbracelet/lipgloss"

type AppTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Subtle     string
	Error      string
	Warning    string
	Success    string
	Background string
	Surface    string
}

func TealTheme() AppTheme {
	return AppTheme{
		Primary:    "#8fd6c6",
		Secondary:  "#2e5d54",
		Accent:     "#c9f2e8",
		Text:       "#e3e8e6",
		Subtle:     "#a7b5b0",
		Error:      "#ffb4ab",
		Warning:    "#eec98a",
		Success:    "#8fd6c6",
		Background: "#121716",
		Surface:    "#1c2322",
	}
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Bold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		SpinnerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		CommandLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Background(lipgloss.Color(theme.Surface)).
			Padding(0, 1),
	}
}

type Styles struct {
	Title          lipgloss.Style
	Normal         lipgloss.Style
	Bold           lipgloss.Style
	Subtle         lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Key            lipgloss.Style
	SpinnerStyle   lipgloss.Style
	Success        lipgloss.Style
	SelectedOption lipgloss.Style
	CommandLine    lipgloss.Style
}
