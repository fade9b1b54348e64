package editor

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#89b4fa")
	colorMuted   = lipgloss.Color("#7f849c")
	colorText    = lipgloss.Color("#cdd6f4")
	colorSuccess = lipgloss.Color("#a6e3a1")
	colorWarning = lipgloss.Color("#f9e2af")
	colorError   = lipgloss.Color("#f38ba8")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	cellStyle    = lipgloss.NewStyle().Foreground(colorText)
	dirtyStyle   = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	belowStyle   = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	promptStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// column renderiza uma célula de largura fixa
func column(style lipgloss.Style, text string, width int, align lipgloss.Position) string {
	return style.Width(width).Align(align).Render(text)
}
