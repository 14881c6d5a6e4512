package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary   = lipgloss.Color("#FF6B9D")
	Secondary = lipgloss.Color("#C792EA")
	Success   = lipgloss.Color("#C3E88D")
	Warning   = lipgloss.Color("#FFCB6B")
	Error     = lipgloss.Color("#F07178")
	Info      = lipgloss.Color("#82AAFF")
	Muted     = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")
	
	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)
	
	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)
	
	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)
	
	// Card style
	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(1, 2).
		MarginBottom(1)
	
	// Active/focused card
	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(Primary).
		Padding(1, 2).
		MarginBottom(1)
	
	// Status styles
	StatusSubmitting = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)
	
	StatusCompleted = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
	
	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
	
	// Button styles
	ButtonStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Background(Secondary).
		Padding(0, 3).
		Bold(true)

	FocusedButtonStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 3).
		Bold(true)

	DisabledButtonStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Background(lipgloss.Color("#37474F")).
		Padding(0, 3)

	// Alert box
	AlertStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(Warning).
		Foreground(Foreground).
		Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)
	
	// Input field
	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 1)
	
	// Focused input
	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)
)
