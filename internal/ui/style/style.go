// Package style holds the colors and glyphs shared by the logger and the
// table renderers.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#F6F7FB")
	Stripe = lipgloss.AdaptiveColor{Light: "#ECEEF5", Dark: "#1C2130"}
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Cross     = "✗"
	Warning   = "!"
	Circle    = "○"
	ArrowUp   = "▲"
	ArrowDown = "▼"
)

// SortArrow returns the glyph for the current sort direction.
func SortArrow(descending bool) string {
	if descending {
		return ArrowDown
	}
	return ArrowUp
}
