package interaction

import "testing"

func TestPointerTracker(t *testing.T) {
	tests := []struct {
		name     string
		moves    [][2]float64
		release  [2]float64
		expected bool
	}{
		{"still", nil, [2]float64{100, 100}, true},
		{"small jitter", [][2]float64{{102, 101}, {101, 102}}, [2]float64{101, 101}, true},
		{"release outside tolerance", nil, [2]float64{110, 100}, false},
		{"dragged and returned", [][2]float64{{150, 100}}, [2]float64{100, 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPointerTracker(0)
			p.Press(100, 100)
			for _, m := range tt.moves {
				p.Move(m[0], m[1])
			}
			if got := p.Release(tt.release[0], tt.release[1]); got != tt.expected {
				t.Errorf("Release = %v, expected %v", got, tt.expected)
			}
			if p.Down() {
				t.Error("tracker should be up after release")
			}
		})
	}
}

func TestPointerTrackerWithoutPress(t *testing.T) {
	p := NewPointerTracker(5)
	p.Move(10, 10)
	if p.Release(0, 0) {
		t.Error("release without press should not click")
	}

	p.Press(0, 0)
	p.Move(20, 0)
	if !p.Dragging() {
		t.Error("expected dragging after leaving tolerance")
	}
	p.Cancel()
	if p.Down() || p.Release(0, 0) {
		t.Error("cancelled gesture should not click")
	}
}
