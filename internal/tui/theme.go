package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Item          lipgloss.Style
	CompletedItem lipgloss.Style
	Holiday       lipgloss.Style
	Today         lipgloss.Style
	Recurring     lipgloss.Style
	Ringing       lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedItem: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Holiday:       lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Italic(true),
		Today:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Recurring:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Ringing:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Blink(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CompletedItem: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Holiday:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Italic(true),
		Today:         lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Recurring:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Ringing:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Blink(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
