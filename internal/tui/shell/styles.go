package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/recipelang/recipelang/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorAccent).
			Padding(0, 1)

	echoStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPass)

	errStyle = lipgloss.NewStyle().
			Foreground(ui.ColorFail)

	noticeStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	promptStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccent).
			Bold(true)
)
