package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor    = "#c0c0c0"
	rowOutsideFGColor = "#5f5f5f"
	headerFGColor     = "#e0e0e0"
	statusBGColor     = "#2b2b2b"
	statusFGColor     = "#cfcfcf"
	legendFGColor     = "#9a9a9a"
	trackFGColor      = "#6c6c6c"
)

var (
	appstyle     = lipgloss.NewStyle().Margin(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(headerFGColor))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	rowTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	// rows outside the window when nothing is filtered
	rowOutsideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(rowOutsideFGColor))
	tableStyle      = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	sliderTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(trackFGColor))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c542"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(statusBGColor)).
			Foreground(lipgloss.Color(statusFGColor))
	legendStyle = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(legendFGColor))
	lockBadge   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9f1c")).Render("[LOCK]")
)
