// Package tui renders the portfolio in a terminal.
//
// Each section is a reveal.Section mounted on a reveal.Tracker. After every
// resize or scroll the model places the section boxes, reports the
// viewport window to the tracker and re-renders, so sections fade in the
// first time they scroll into view.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Cicchelli/portifoliowebstephan/internal/content"
	"github.com/Cicchelli/portifoliowebstephan/internal/reveal"
	"github.com/Cicchelli/portifoliowebstephan/internal/theme"
)

const fadeInterval = 50 * time.Millisecond

// Options configures a Model.
type Options struct {
	Profile content.Profile
	Reveal  reveal.Options

	// Renderer is the lipgloss renderer for the output; nil selects the
	// default renderer. SSH sessions pass their own.
	Renderer *lipgloss.Renderer
	Now      func() time.Time
}

type fadeTickMsg time.Time

// Model is the Bubble Tea model of the terminal portfolio.
type Model struct {
	profile  content.Profile
	theme    *theme.Controller
	tracker  *reveal.Tracker
	sections []*reveal.Section
	viewport viewport.Model
	keys     keyMap
	renderer *lipgloss.Renderer
	now      func() time.Time

	width  int
	height int
	ready  bool
	fading bool
}

// New returns a model in light mode with every section unrevealed.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ropts := opts.Reveal
	if ropts.Clock == nil {
		ropts.Clock = now
	}

	m := Model{
		profile:  opts.Profile,
		theme:    theme.New(nil),
		tracker:  reveal.NewTracker(),
		keys:     defaultKeyMap(),
		renderer: r,
		now:      now,
	}
	for _, id := range content.Sections() {
		s := reveal.New(id, ropts)
		s.Mount(m.tracker)
		m.sections = append(m.sections, s)
	}
	return m
}

// Run starts the terminal program on the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run portfolio view: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(1, msg.Height-2)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		return m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.theme.Toggle()
			return m.refresh()
		}

	case fadeTickMsg:
		m.fading = false
		return m.refresh()
	}

	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	next, fade := m.refresh()
	return next, tea.Batch(cmd, fade)
}

// refresh lays the sections out, reports the visible window to the
// tracker and re-renders with the resulting reveal state.
func (m Model) refresh() (Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	blocks := m.renderBlocks()
	top := 0
	for i, s := range m.sections {
		h := lipgloss.Height(blocks[i])
		m.tracker.Place(s.ID, reveal.Box{Top: top, Height: h})
		top += h + 1
	}
	m.tracker.Scroll(reveal.Box{Top: m.viewport.YOffset, Height: m.viewport.Height})

	// Heights do not depend on opacity, and a section revealed by this
	// scroll is still at zero progress, so the blocks stay valid.
	m.viewport.SetContent(m.joinBlocks(blocks))

	now := m.now()
	for _, s := range m.sections {
		if s.Animating(now) && !m.fading {
			m.fading = true
			return m, tea.Tick(fadeInterval, func(t time.Time) tea.Msg { return fadeTickMsg(t) })
		}
	}
	return m, nil
}

func (m Model) renderBlocks() []string {
	now := m.now()
	palette := m.theme.Palette()
	blocks := make([]string, len(m.sections))
	for i, s := range m.sections {
		st := stylesFor(m.renderer, palette, s.Presentation(now).Opacity, m.width)
		blocks[i] = renderSection(s.ID, m.profile, st, m.width)
	}
	return blocks
}

func (m Model) joinBlocks(blocks []string) string {
	gap := m.renderer.NewStyle().
		Background(lipgloss.Color(m.theme.Palette().Background)).
		Width(m.width).
		Render("")
	return strings.Join(blocks, "\n"+gap+"\n")
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	header, footer := chromeStyles(m.renderer, m.theme.Palette(), m.width)
	head := header.Render(m.profile.ShortName + "  " + content.Glyph(m.theme.Label()))
	help := fmt.Sprintf("↑/↓ rolar • %s %s • %s %s",
		m.keys.Theme.Help().Key, m.keys.Theme.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)
	return lipgloss.JoinVertical(lipgloss.Left, head, m.viewport.View(), footer.Render(help))
}

// Theme returns the session's theme controller.
func (m Model) Theme() *theme.Controller { return m.theme }

// Revealed reports whether the section with the given id has been revealed.
func (m Model) Revealed(id string) bool {
	for _, s := range m.sections {
		if s.ID == id {
			return s.Revealed()
		}
	}
	return false
}
