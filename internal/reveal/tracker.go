package reveal

// Box is a vertical span measured in rows (terminal lines or CSS pixels).
type Box struct {
	Top    int
	Height int
}

// Bottom is the first row past the box.
func (b Box) Bottom() int { return b.Top + b.Height }

// Ratio returns the fraction of box that lies inside view, in [0, 1].
// An empty box never intersects.
func Ratio(box, view Box) float64 {
	if box.Height <= 0 || view.Height <= 0 {
		return 0
	}
	top := max(box.Top, view.Top)
	bottom := min(box.Bottom(), view.Bottom())
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(box.Height)
}

func covers(box, view Box) bool {
	return view.Height > 0 && box.Top <= view.Top && box.Bottom() >= view.Bottom()
}

type registration struct {
	id      string
	fn      func(float64)
	stopped bool
}

// Tracker is an Observer driven by explicit viewport updates. The owner
// places each target's box after layout and calls Scroll whenever the
// visible window moves or resizes; every live subscription then receives
// its current intersection ratio.
type Tracker struct {
	regs  []*registration
	boxes map[string]Box
	view  Box
}

// NewTracker returns a tracker with no targets and an empty view.
func NewTracker() *Tracker {
	return &Tracker{boxes: make(map[string]Box)}
}

// Observe implements Observer.
func (t *Tracker) Observe(id string, fn func(float64)) (func(), error) {
	r := &registration{id: id, fn: fn}
	t.regs = append(t.regs, r)
	return func() { t.remove(r) }, nil
}

// Place records the laid-out box of target id.
func (t *Tracker) Place(id string, box Box) {
	t.boxes[id] = box
}

// Scroll moves the view and dispatches intersection ratios to every target
// that has been placed. A target that covers the whole view reports 1, so
// a box taller than the view can still reach its threshold.
func (t *Tracker) Scroll(view Box) {
	t.view = view
	regs := make([]*registration, len(t.regs))
	copy(regs, t.regs)
	for _, r := range regs {
		if r.stopped {
			continue
		}
		box, ok := t.boxes[r.id]
		if !ok {
			continue
		}
		ratio := Ratio(box, view)
		if covers(box, view) {
			ratio = 1
		}
		r.fn(ratio)
	}
}

// View returns the last window passed to Scroll.
func (t *Tracker) View() Box { return t.view }

// Len reports the number of live subscriptions.
func (t *Tracker) Len() int { return len(t.regs) }

func (t *Tracker) remove(r *registration) {
	if r.stopped {
		return
	}
	r.stopped = true
	for i, cur := range t.regs {
		if cur == r {
			t.regs = append(t.regs[:i], t.regs[i+1:]...)
			return
		}
	}
}
