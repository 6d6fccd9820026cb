package views

import (
	"github.com/charmbracelet/lipgloss"
)

// LightGreen is the background of the highlighted suggestion row
const LightGreen = "#8FE8B4"

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	Menu         lipgloss.Style
	HighlightBg  lipgloss.Style
	Scroll       lipgloss.Style
	Delete       lipgloss.Style
	DeleteFocus  lipgloss.Style
	Item         lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Input:        lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Menu:         lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
		HighlightBg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color(LightGreen)),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Delete:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		DeleteFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("203")).Bold(true),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(PadTop, PadLeft),
	}
}
