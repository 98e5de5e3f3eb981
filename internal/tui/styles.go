package tui

import "github.com/charmbracelet/lipgloss"

const cellWidth = 26

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	speechStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Padding(0, 2)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(cellWidth-2).Padding(0, 1)
	activeCell    = cellStyle.BorderForeground(lipgloss.Color("212")).Bold(true)
	cellKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)
