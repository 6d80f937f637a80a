package model

// Direction is one of the 8 grid directions, clockwise from North.
// Odd values are diagonals.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionCount is the number of grid directions.
const DirectionCount = 8

var (
	dirOffsetX = [DirectionCount]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirOffsetY = [DirectionCount]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

var directionNames = [DirectionCount]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// Offset returns the (dx, dy) unit step for d.
func (d Direction) Offset() (dx, dy int) {
	d &= 7
	return dirOffsetX[d], dirOffsetY[d]
}

// IsDiagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction) IsDiagonal() bool {
	return d&1 == 1
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d & 7) ^ 4
}

// Rotate turns d by n eighths clockwise (negative n turns counter-clockwise).
func (d Direction) Rotate(n int) Direction {
	return Direction((int(d) + n) & 7)
}

func (d Direction) String() string {
	if d >= DirectionCount {
		return "invalid"
	}
	return directionNames[d]
}

// DirectionBetween returns the direction of a single unit step from (fromX, fromY)
// to (toX, toY). ok is false when the two columns are not 8-adjacent.
func DirectionBetween(fromX, fromY, toX, toY int) (d Direction, ok bool) {
	dx, dy := toX-fromX, toY-fromY
	for i := range DirectionCount {
		if dirOffsetX[i] == dx && dirOffsetY[i] == dy {
			return Direction(i), true
		}
	}
	return 0, false
}
