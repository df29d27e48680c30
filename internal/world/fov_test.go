package world

import "testing"

// openRoomFOV builds a registered oracle over a 20x20 map with one carved room.
func openRoomFOV(room Rect) (*Map, *BresenhamFOV) {
	m := NewMap(20, 20)
	m.CarveRoom(room)
	fov := NewBresenhamFOV(m.Width, m.Height)
	RegisterFOV(m, fov)
	return m, fov
}

func pointSet(points []Point) map[Point]bool {
	set := make(map[Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

func TestFOVAlgorithmParse(t *testing.T) {
	tests := []struct {
		name    string
		want    FOVAlgorithm
		wantErr bool
	}{
		{"basic", FOVBasic, false},
		{"", FOVBasic, false},
		{"permissive", FOVBasic, true},
	}
	for _, tt := range tests {
		got, err := ParseFOVAlgorithm(tt.name)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseFOVAlgorithm(%q) = %v, %v", tt.name, got, err)
		}
	}
	if FOVBasic.String() != "basic" || FOVAlgorithm(9).String() != "unknown" {
		t.Error("FOVAlgorithm.String() mismatch")
	}
}

func TestFOVOpenRoom(t *testing.T) {
	_, fov := openRoomFOV(NewRect(2, 2, 10, 10)) // interior 3..11
	visible := pointSet(fov.Compute(7, 7, 0, true, FOVBasic))

	for x := 3; x <= 11; x++ {
		for y := 3; y <= 11; y++ {
			if !visible[Point{x, y}] {
				t.Errorf("floor (%d,%d) should be visible in an open room", x, y)
			}
		}
	}
	if !visible[Point{2, 7}] {
		t.Error("room wall (2,7) should be lit when lightWalls is set")
	}
	if visible[Point{1, 7}] {
		t.Error("tile behind the room wall should not be visible")
	}
}

func TestFOVLightWallsOff(t *testing.T) {
	_, fov := openRoomFOV(NewRect(2, 2, 10, 10))
	visible := pointSet(fov.Compute(7, 7, 0, false, FOVBasic))

	if visible[Point{2, 7}] {
		t.Error("walls should not be visible without lightWalls")
	}
	if !visible[Point{3, 7}] {
		t.Error("floor next to the wall should still be visible")
	}
}

func TestFOVRadius(t *testing.T) {
	_, fov := openRoomFOV(NewRect(0, 0, 19, 19))
	visible := pointSet(fov.Compute(9, 9, 3, true, FOVBasic))

	if !visible[Point{12, 9}] {
		t.Error("(12,9) at distance 3 should be visible")
	}
	if visible[Point{13, 9}] {
		t.Error("(13,9) at distance 4 should be outside radius 3")
	}
	if visible[Point{12, 12}] {
		t.Error("(12,12) is further than 3 in Euclidean distance")
	}
}

func TestFOVPillarCastsShadow(t *testing.T) {
	m, fov := openRoomFOV(NewRect(0, 0, 19, 19))
	m.SetTile(10, 9, Wall)
	RegisterFOV(m, fov)

	visible := pointSet(fov.Compute(8, 9, 0, true, FOVBasic))
	if !visible[Point{10, 9}] {
		t.Error("the pillar itself should be lit")
	}
	if visible[Point{12, 9}] {
		t.Error("(12,9) directly behind the pillar should be hidden")
	}
}

func TestFOVOriginOffMap(t *testing.T) {
	_, fov := openRoomFOV(NewRect(0, 0, 10, 10))
	if got := fov.Compute(-1, 3, 5, true, FOVBasic); got != nil {
		t.Errorf("Compute() from off the map = %v, want nil", got)
	}
}
