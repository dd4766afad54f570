package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	center := bbox.Center()
	expected := NewVector3(5, 10, 15)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: new box should be empty")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("Size of empty box should be zero, got %v", bbox.Size())
	}
	if bbox.ContainsXY(0, 0) {
		t.Errorf("Empty box should not contain any point")
	}
}

func TestBoundingBoxContainsXY(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-10, -10, 0))
	bbox.Extend(NewVector3(10, 10, 3))

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{0, 0, true},
		{10, -10, true},
		{10.1, 0, false},
		{0, -11, false},
	}
	for _, tt := range tests {
		if got := bbox.ContainsXY(tt.x, tt.y); got != tt.expected {
			t.Errorf("ContainsXY(%v, %v): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestBoundingBoxIntersectsRay(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-1, -1, -1))
	bbox.Extend(NewVector3(1, 1, 1))

	hit := NewRay(NewVector3(0, 0, 10), NewVector3(0, 0, -1))
	if !bbox.IntersectsRay(hit) {
		t.Errorf("IntersectsRay failed: downward ray through center should hit")
	}

	miss := NewRay(NewVector3(5, 0, 10), NewVector3(0, 0, -1))
	if bbox.IntersectsRay(miss) {
		t.Errorf("IntersectsRay failed: ray outside footprint should miss")
	}

	away := NewRay(NewVector3(0, 0, 10), NewVector3(0, 0, 1))
	if bbox.IntersectsRay(away) {
		t.Errorf("IntersectsRay failed: ray pointing away should miss")
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 4))

	volume := bbox.Volume()
	expected := 24.0 // 2 * 3 * 4 = 24

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expected, volume)
	}
}
