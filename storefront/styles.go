package main

import "github.com/charmbracelet/lipgloss"

var (
	brand   = lipgloss.Color("#B5838D")
	muted   = lipgloss.Color("#6D6875")
	accent  = lipgloss.Color("#E5989B")
	success = lipgloss.Color("#8BC34A")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brand).
			MarginBottom(1)
	nameStyle     = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(muted).Italic(true)
	priceStyle    = lipgloss.NewStyle().Foreground(success).Bold(true)
	starStyle     = lipgloss.NewStyle().Foreground(accent)
	emptyStyle    = lipgloss.NewStyle().Foreground(muted)
)
