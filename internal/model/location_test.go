package model

import "testing"

func TestLocation_Step(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Location
	}{
		{"north", North, Location{X: 10, Y: 9, Z: 5}},
		{"northeast", NorthEast, Location{X: 11, Y: 9, Z: 5}},
		{"east", East, Location{X: 11, Y: 10, Z: 5}},
		{"southeast", SouthEast, Location{X: 11, Y: 11, Z: 5}},
		{"south", South, Location{X: 10, Y: 11, Z: 5}},
		{"southwest", SouthWest, Location{X: 9, Y: 11, Z: 5}},
		{"west", West, Location{X: 9, Y: 10, Z: 5}},
		{"northwest", NorthWest, Location{X: 9, Y: 9, Z: 5}},
	}

	start := NewLocation(10, 10, 5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := start.Step(tt.dir); got != tt.want {
				t.Errorf("Step(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestLocation_ChebyshevDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want int
	}{
		{"same", NewLocation(1, 1, 0), NewLocation(1, 1, 40), 0},
		{"straight", NewLocation(0, 0, 0), NewLocation(5, 0, 0), 5},
		{"diagonal", NewLocation(0, 0, 0), NewLocation(3, -3, 0), 3},
		{"mixed", NewLocation(2, 7, 0), NewLocation(-1, 3, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ChebyshevDistance(tt.b); got != tt.want {
				t.Errorf("ChebyshevDistance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocation_Immutable(t *testing.T) {
	loc := NewLocation(1, 2, 3)
	moved := loc.Step(SouthEast)
	raised := loc.WithZ(20)

	if loc != (Location{X: 1, Y: 2, Z: 3}) {
		t.Errorf("original location mutated: %v", loc)
	}
	if moved != (Location{X: 2, Y: 3, Z: 3}) {
		t.Errorf("Step() = %v", moved)
	}
	if raised != (Location{X: 1, Y: 2, Z: 20}) {
		t.Errorf("WithZ() = %v", raised)
	}
	if !loc.SameColumn(raised) {
		t.Error("SameColumn() = false for equal (x, y)")
	}
}
