package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wltime/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.Mist)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Iris)

	stripeStyle = lipgloss.NewStyle().
			Background(style.Stripe)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
