// Package reveal latches page sections visible the first time they scroll
// into view.
//
// A Section subscribes to an Observer once mounted. The first intersection
// ratio at or above its threshold flips the section to revealed, drops the
// subscription and fires the OnReveal callbacks. Nothing moves it back: the
// only transition is unrevealed -> revealed.
//
// Sections are owned by one view and are not safe for concurrent use.
package reveal

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultThreshold is the visible fraction of a section that counts as
	// entering the viewport.
	DefaultThreshold = 0.1

	// DefaultDuration is how long the fade-in takes.
	DefaultDuration = 1000 * time.Millisecond

	// HiddenOffset is the vertical offset, in CSS pixels, of a section that
	// has not been revealed yet (translate-y-10).
	HiddenOffset = 40.0
)

const (
	HiddenClasses = "opacity-0 translate-y-10"
	ShownClasses  = "opacity-100 translate-y-0"
)

// ErrUnsupported is returned by observers that cannot watch the viewport.
var ErrUnsupported = errors.New("reveal: intersection observation unsupported")

// Observer delivers intersection ratios for the target with the given id
// until the returned stop function is called.
type Observer interface {
	Observe(id string, fn func(ratio float64)) (stop func(), err error)
}

// Unavailable is an Observer for platforms without viewport observation.
var Unavailable Observer = unavailable{}

type unavailable struct{}

func (unavailable) Observe(string, func(float64)) (func(), error) {
	return nil, ErrUnsupported
}

// Options configures a Section. Zero values select the defaults.
type Options struct {
	Threshold float64
	Duration  time.Duration
	Clock     func() time.Time
}

// Section is the reveal wrapper around one page section.
type Section struct {
	ID string

	threshold  float64
	duration   time.Duration
	revealed   bool
	revealedAt time.Time
	stop       func()
	onReveal   []func()
	now        func() time.Time
}

// New returns an unrevealed section.
func New(id string, opts Options) *Section {
	threshold := opts.Threshold
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Section{
		ID:        id,
		threshold: threshold,
		duration:  duration,
		now:       now,
	}
}

// OnReveal registers fn to run once, when the section is revealed.
func (s *Section) OnReveal(fn func()) {
	s.onReveal = append(s.onReveal, fn)
}

// Mount subscribes the section to obs. When obs is nil or cannot observe,
// the section is revealed right away so content is never left hidden.
func (s *Section) Mount(obs Observer) {
	if s.revealed {
		return
	}
	if obs == nil {
		s.reveal()
		return
	}
	stop, err := obs.Observe(s.ID, func(ratio float64) { s.Intersect(ratio) })
	if err != nil {
		s.reveal()
		return
	}
	if s.revealed {
		// Revealed by a synchronous first callback.
		if stop != nil {
			stop()
		}
		return
	}
	s.stop = stop
}

// Intersect handles one intersection event and reports whether it revealed
// the section. Events after the reveal are ignored.
func (s *Section) Intersect(ratio float64) bool {
	if s.revealed || ratio < s.threshold {
		return false
	}
	s.reveal()
	return true
}

func (s *Section) reveal() {
	s.revealed = true
	s.revealedAt = s.now()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	for _, fn := range s.onReveal {
		fn()
	}
	s.onReveal = nil
}

// Revealed reports whether the section has entered the viewport.
func (s *Section) Revealed() bool { return s.revealed }

func (s *Section) Threshold() float64 { return s.threshold }

func (s *Section) Duration() time.Duration { return s.duration }

// Subscribed reports whether the section still listens for events.
func (s *Section) Subscribed() bool { return s.stop != nil }

// Classes returns the utility classes for the section's current state.
func (s *Section) Classes() string {
	state := HiddenClasses
	if s.revealed {
		state = ShownClasses
	}
	return BaseClasses(s.duration) + " " + state
}

// BaseClasses returns the transition classes shared by both states.
func BaseClasses(d time.Duration) string {
	return "transition-all " + durationClass(d)
}

func durationClass(d time.Duration) string {
	ms := d.Milliseconds()
	switch ms {
	case 0, 75, 100, 150, 200, 300, 500, 700, 1000:
		return fmt.Sprintf("duration-%d", ms)
	}
	return fmt.Sprintf("duration-[%dms]", ms)
}

// Presentation is the visual state of a section at a point in time.
type Presentation struct {
	Opacity float64
	OffsetY float64
}

// Presentation interpolates from hidden to shown over the section's
// duration, starting when it was revealed.
func (s *Section) Presentation(now time.Time) Presentation {
	if !s.revealed {
		return Presentation{Opacity: 0, OffsetY: HiddenOffset}
	}
	p := s.progress(now)
	return Presentation{Opacity: p, OffsetY: HiddenOffset * (1 - p)}
}

// Animating reports whether the section is still mid-transition.
func (s *Section) Animating(now time.Time) bool {
	return s.revealed && s.progress(now) < 1
}

func (s *Section) progress(now time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(s.revealedAt)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= s.duration:
		return 1
	}
	return float64(elapsed) / float64(s.duration)
}
