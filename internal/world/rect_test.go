package world

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		rect         Rect
		wantX, wantY int
	}{
		{NewRect(0, 0, 6, 6), 3, 3},
		{NewRect(10, 5, 7, 9), 13, 9},
		{Rect{X1: 1, Y1: 1, X2: 2, Y2: 2}, 1, 1},
	}

	for _, tt := range tests {
		x, y := tt.rect.Center()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.rect, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestRectIntersectsInclusive(t *testing.T) {
	base := NewRect(10, 10, 6, 6) // x 10..16, y 10..16

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(12, 12, 6, 6), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"shares right border", NewRect(16, 10, 6, 6), true},
		{"shares bottom border", NewRect(10, 16, 6, 6), true},
		{"touches corner", NewRect(16, 16, 3, 3), true},
		{"one column apart", NewRect(17, 10, 6, 6), false},
		{"far away", NewRect(40, 30, 6, 6), false},
		{"overlaps x only", NewRect(12, 30, 6, 6), false},
	}

	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(base); got != tt.want {
			t.Errorf("%s: Intersects() is not symmetric", tt.name)
		}
	}
}

func TestRectContainsInterior(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	if r.Contains(0, 0) || r.Contains(4, 2) {
		t.Error("border tiles should not be inside the room")
	}
	if !r.Contains(1, 1) || !r.Contains(3, 3) {
		t.Error("interior tiles should be inside the room")
	}
}
