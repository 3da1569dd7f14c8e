package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/erazemk/freshkeeper/internal/status"
)

// Palette is a badge's background and foreground color.
type Palette struct {
	Bg string
	Fg string
}

// Colors returns the badge palette for a status. ok is false only for
// values that are not one of the four statuses.
func Colors(s status.Status) (p Palette, ok bool) {
	switch s {
	case status.OutOfStock:
		return Palette{Bg: "#E0E0E0", Fg: "#333333"}, true
	case status.Expired:
		return Palette{Bg: "#FDE7E9", Fg: "#B00020"}, true
	case status.Soon:
		return Palette{Bg: "#FFF2CC", Fg: "#7A5D00"}, true
	case status.OK:
		return Palette{Bg: "#E8F5E9", Fg: "#1B5E20"}, true
	}
	return Palette{}, false
}

// Badge renders the status label in its colors. Colors are dropped
// automatically when the output is not a terminal.
func Badge(s status.Status) string {
	p, ok := Colors(s)
	if !ok {
		return string(s)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Bg)).
		Foreground(lipgloss.Color(p.Fg)).
		Bold(true).
		Padding(0, 1).
		Render(string(s))
}
