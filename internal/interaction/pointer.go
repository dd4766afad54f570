package interaction

import "math"

// DefaultClickTolerance is how far in pixels a pointer may travel between
// press and release and still count as a click
const DefaultClickTolerance = 5.0

// PointerTracker tells clicks and taps apart from drags
type PointerTracker struct {
	Tolerance float64

	down   bool
	moved  bool
	startX float64
	startY float64
}

// NewPointerTracker creates a tracker. A tolerance <= 0 uses
// DefaultClickTolerance.
func NewPointerTracker(tolerance float64) *PointerTracker {
	if tolerance <= 0 {
		tolerance = DefaultClickTolerance
	}
	return &PointerTracker{Tolerance: tolerance}
}

// Press records the start of a gesture
func (p *PointerTracker) Press(x, y float64) {
	p.down = true
	p.moved = false
	p.startX, p.startY = x, y
}

// Move records pointer travel while pressed
func (p *PointerTracker) Move(x, y float64) {
	if p.down && p.beyond(x, y) {
		p.moved = true
	}
}

// Down reports whether a gesture is in progress
func (p *PointerTracker) Down() bool {
	return p.down
}

// Dragging reports whether the current gesture has left the click tolerance
func (p *PointerTracker) Dragging() bool {
	return p.down && p.moved
}

// Release ends the gesture and reports whether it was a click
func (p *PointerTracker) Release(x, y float64) bool {
	if !p.down {
		return false
	}
	p.down = false
	return !p.moved && !p.beyond(x, y)
}

// Cancel drops the gesture without producing a click
func (p *PointerTracker) Cancel() {
	p.down = false
}

func (p *PointerTracker) beyond(x, y float64) bool {
	return math.Hypot(x-p.startX, y-p.startY) >= p.Tolerance
}
