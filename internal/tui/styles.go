package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Cicchelli/portifoliowebstephan/internal/theme"
)

// minOpacity is the floor applied to unrevealed sections so they stay
// faintly visible.
const minOpacity = 0.2

type sectionStyles struct {
	Title  lipgloss.Style
	Strong lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Block  lipgloss.Style
}

// stylesFor derives a section's styles from the palette at the given
// opacity: every foreground is blended from the background toward its
// palette color.
func stylesFor(r *lipgloss.Renderer, p theme.Palette, opacity float64, width int) sectionStyles {
	if opacity < minOpacity {
		opacity = minOpacity
	}
	fg := func(hex string) lipgloss.Color {
		return lipgloss.Color(blend(p.Background, hex, opacity))
	}
	bg := lipgloss.Color(p.Background)

	base := r.NewStyle().Background(bg)
	return sectionStyles{
		Title:  base.Foreground(fg(p.Text)).Bold(true),
		Strong: base.Foreground(fg(p.Text)).Bold(true),
		Text:   base.Foreground(fg(p.Text)),
		Muted:  base.Foreground(fg(p.Muted)),
		Accent: base.Foreground(fg(p.Accent)),
		Block: r.NewStyle().
			Background(bg).
			Width(width).
			Padding(0, 2),
	}
}

func chromeStyles(r *lipgloss.Renderer, p theme.Palette, width int) (header, footer lipgloss.Style) {
	header = r.NewStyle().
		Foreground(lipgloss.Color(p.Text)).
		Background(lipgloss.Color(p.Surface)).
		Bold(true).
		Width(width).
		Padding(0, 2)
	footer = r.NewStyle().
		Foreground(lipgloss.Color(p.Muted)).
		Background(lipgloss.Color(p.Surface)).
		Width(width).
		Padding(0, 2)
	return header, footer
}

func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	if t >= 1 {
		return b.Hex()
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
