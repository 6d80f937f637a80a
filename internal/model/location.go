package model

import "fmt"

// Location представляет координаты тайла в мире: колонка (X, Y) и высота Z.
// Value type, передаётся по значению (immutable).
type Location struct {
	X int
	Y int
	Z int
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(x, y, z int) Location {
	return Location{X: x, Y: y, Z: z}
}

// WithZ возвращает новый Location с обновлённой высотой.
func (l Location) WithZ(z int) Location {
	l.Z = z
	return l
}

// Step возвращает соседнюю колонку в направлении d. Z не меняется.
func (l Location) Step(d Direction) Location {
	dx, dy := d.Offset()
	l.X += dx
	l.Y += dy
	return l
}

// SameColumn сообщает, совпадают ли (X, Y) без учёта Z.
func (l Location) SameColumn(other Location) bool {
	return l.X == other.X && l.Y == other.Y
}

// ChebyshevDistance возвращает max(|dx|, |dy|) — число шагов по 8 направлениям.
func (l Location) ChebyshevDistance(other Location) int {
	return Chebyshev(l.X, l.Y, other.X, other.Y)
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d,%d)", l.X, l.Y, l.Z)
}

// Chebyshev returns max(|x1-x2|, |y1-y2|).
func Chebyshev(x1, y1, x2, y2 int) int {
	return max(abs(x1-x2), abs(y1-y2))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
