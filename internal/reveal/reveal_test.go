package reveal

import (
	"errors"
	"testing"
	"time"
)

func TestSectionScenario(t *testing.T) {
	t.Parallel()

	s := New("about", Options{Threshold: 0.1})
	tr := NewTracker()
	s.Mount(tr)
	tr.Place("about", Box{Top: 0, Height: 100})

	// 5 of 100 rows visible.
	tr.Scroll(Box{Top: 95, Height: 50})
	if s.Revealed() {
		t.Fatal("section revealed below threshold")
	}
	if got, want := s.Classes(), "transition-all duration-1000 opacity-0 translate-y-10"; got != want {
		t.Fatalf("Classes() = %q, want %q", got, want)
	}

	// Half visible.
	tr.Scroll(Box{Top: 50, Height: 200})
	if !s.Revealed() {
		t.Fatal("section not revealed at ratio 0.5")
	}
	if got, want := s.Classes(), "transition-all duration-1000 opacity-100 translate-y-0"; got != want {
		t.Fatalf("Classes() = %q, want %q", got, want)
	}

	// Scrolled fully away.
	tr.Scroll(Box{Top: 1000, Height: 50})
	if !s.Revealed() {
		t.Fatal("section reverted after scrolling away")
	}
	if s.Subscribed() || tr.Len() != 0 {
		t.Fatalf("section still subscribed after reveal: subscribed=%t live=%d", s.Subscribed(), tr.Len())
	}
}

func TestIntersectDirectRatios(t *testing.T) {
	t.Parallel()

	s := New("hero", Options{})
	if s.Intersect(0.05) {
		t.Fatal("0.05 should not reveal with default threshold")
	}
	if s.Revealed() {
		t.Fatal("flag set below threshold")
	}
	if !s.Intersect(0.5) {
		t.Fatal("0.5 should reveal")
	}
	if s.Intersect(0.0) || !s.Revealed() {
		t.Fatal("flag must stay true after ratio 0.0")
	}
}

func TestThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	s := New("x", Options{Threshold: 0.25})
	if !s.Intersect(0.25) {
		t.Fatal("ratio equal to threshold should reveal")
	}
}

func TestFireOnce(t *testing.T) {
	t.Parallel()

	s := New("services", Options{})
	fired := 0
	s.OnReveal(func() { fired++ })

	tr := NewTracker()
	s.Mount(tr)
	tr.Place("services", Box{Top: 0, Height: 10})

	for i := 0; i < 50; i++ {
		tr.Scroll(Box{Top: 0, Height: 10})
		s.Intersect(1)
	}
	if fired != 1 {
		t.Fatalf("reveal side effect ran %d times, want 1", fired)
	}
}

func TestMonotonicAcrossRatios(t *testing.T) {
	t.Parallel()

	ratios := []float64{0, 0.02, 0.09, 0.1, 0, 0.3, 0, 1, 0.01, 0}
	s := New("cert", Options{})
	seen := false
	for i, r := range ratios {
		s.Intersect(r)
		if seen && !s.Revealed() {
			t.Fatalf("flag reverted at event %d (ratio %v)", i, r)
		}
		seen = s.Revealed()
	}
	if !seen {
		t.Fatal("section never revealed")
	}
}

func TestMountWithoutObservationShowsContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		obs  Observer
	}{
		{name: "nil observer", obs: nil},
		{name: "unsupported", obs: Unavailable},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New("contact", Options{})
			s.Mount(tt.obs)
			if !s.Revealed() {
				t.Fatal("section should default to visible when observation is unavailable")
			}
		})
	}
}

func TestUnavailableReturnsSentinel(t *testing.T) {
	t.Parallel()

	_, err := Unavailable.Observe("x", func(float64) {})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

type syncObserver struct {
	ratio   float64
	stopped bool
}

func (o *syncObserver) Observe(_ string, fn func(float64)) (func(), error) {
	fn(o.ratio)
	return func() { o.stopped = true }, nil
}

func TestMountRevealedBySynchronousCallbackUnsubscribes(t *testing.T) {
	t.Parallel()

	obs := &syncObserver{ratio: 1}
	s := New("hero", Options{})
	s.Mount(obs)
	if !s.Revealed() {
		t.Fatal("expected reveal from initial callback")
	}
	if !obs.stopped {
		t.Fatal("expected subscription to be dropped")
	}
	if s.Subscribed() {
		t.Fatal("section should not keep a stop handle")
	}
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opts          Options
		wantThreshold float64
		wantDuration  time.Duration
	}{
		{name: "zero", opts: Options{}, wantThreshold: DefaultThreshold, wantDuration: DefaultDuration},
		{name: "negative", opts: Options{Threshold: -1, Duration: -time.Second}, wantThreshold: DefaultThreshold, wantDuration: DefaultDuration},
		{name: "too large", opts: Options{Threshold: 1.5}, wantThreshold: DefaultThreshold, wantDuration: DefaultDuration},
		{name: "custom", opts: Options{Threshold: 0.5, Duration: 300 * time.Millisecond}, wantThreshold: 0.5, wantDuration: 300 * time.Millisecond},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New("x", tt.opts)
			if s.Threshold() != tt.wantThreshold {
				t.Fatalf("Threshold() = %v, want %v", s.Threshold(), tt.wantThreshold)
			}
			if s.Duration() != tt.wantDuration {
				t.Fatalf("Duration() = %v, want %v", s.Duration(), tt.wantDuration)
			}
		})
	}
}

func TestBaseClassesDuration(t *testing.T) {
	t.Parallel()

	if got := BaseClasses(500 * time.Millisecond); got != "transition-all duration-500" {
		t.Fatalf("BaseClasses(500ms) = %q", got)
	}
	if got := BaseClasses(1200 * time.Millisecond); got != "transition-all duration-[1200ms]" {
		t.Fatalf("BaseClasses(1200ms) = %q", got)
	}
}

func TestPresentationFade(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New("x", Options{Duration: time.Second, Clock: func() time.Time { return start }})

	if p := s.Presentation(start); p.Opacity != 0 || p.OffsetY != HiddenOffset {
		t.Fatalf("unrevealed presentation = %+v", p)
	}

	s.Intersect(1)

	mid := s.Presentation(start.Add(500 * time.Millisecond))
	if mid.Opacity != 0.5 || mid.OffsetY != HiddenOffset/2 {
		t.Fatalf("mid presentation = %+v", mid)
	}
	if !s.Animating(start.Add(500 * time.Millisecond)) {
		t.Fatal("expected animation in progress")
	}

	end := s.Presentation(start.Add(2 * time.Second))
	if end.Opacity != 1 || end.OffsetY != 0 {
		t.Fatalf("end presentation = %+v", end)
	}
	if s.Animating(start.Add(2 * time.Second)) {
		t.Fatal("animation should be done")
	}
}
