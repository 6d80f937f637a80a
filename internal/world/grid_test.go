package world

import "testing"

func TestCoordToSectorIndex(t *testing.T) {
	tests := []struct {
		name           string
		x, y           int
		wantSX, wantSY int
	}{
		{"origin", 0, 0, 0, 0},
		{"last column of first sector", 7, 7, 0, 0},
		{"first column of second sector", 8, 0, 1, 0},
		{"far column", 100, 37, 12, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := CoordToSectorIndex(tt.x, tt.y)
			if sx != tt.wantSX || sy != tt.wantSY {
				t.Errorf("CoordToSectorIndex(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, sx, sy, tt.wantSX, tt.wantSY)
			}
		})
	}
}

func TestCoordToLocal(t *testing.T) {
	lx, ly := CoordToLocal(13, 22)
	if lx != 5 || ly != 6 {
		t.Errorf("CoordToLocal(13, 22) = (%d, %d), want (5, 6)", lx, ly)
	}
}

func TestSectorsFor(t *testing.T) {
	tests := []struct {
		w, h   int
		sx, sy int
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{8, 8, 1, 1},
		{9, 16, 2, 2},
		{17, 3, 3, 1},
	}

	for _, tt := range tests {
		sx, sy := SectorsFor(tt.w, tt.h)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("SectorsFor(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, sx, sy, tt.sx, tt.sy)
		}
	}
}
