package geo

// LineIterator walks the columns of a 2D Bresenham line from start to end,
// both included.
type LineIterator struct {
	currentX, currentY int
	targetX, targetY   int
	deltaX, deltaY     int
	stepX, stepY       int
	err                int
	xDominant          bool
	started            bool
}

// NewLineIterator creates a line iterator from (sx, sy) to (ex, ey).
func NewLineIterator(sx, sy, ex, ey int) *LineIterator {
	it := &LineIterator{
		currentX: sx,
		currentY: sy,
		targetX:  ex,
		targetY:  ey,
		deltaX:   abs(ex - sx),
		deltaY:   abs(ey - sy),
		stepX:    1,
		stepY:    1,
	}
	if ex < sx {
		it.stepX = -1
	}
	if ey < sy {
		it.stepY = -1
	}

	it.xDominant = it.deltaX >= it.deltaY
	if it.xDominant {
		it.err = it.deltaX / 2
	} else {
		it.err = it.deltaY / 2
	}
	return it
}

// Next advances to the next column.
// Returns false once the target has been visited.
func (it *LineIterator) Next() bool {
	if !it.started {
		it.started = true
		return true // start column
	}

	if it.currentX == it.targetX && it.currentY == it.targetY {
		return false
	}

	if it.xDominant {
		it.currentX += it.stepX
		it.err += it.deltaY
		if it.err >= it.deltaX {
			it.currentY += it.stepY
			it.err -= it.deltaX
		}
	} else {
		it.currentY += it.stepY
		it.err += it.deltaX
		if it.err >= it.deltaY {
			it.currentX += it.stepX
			it.err -= it.deltaY
		}
	}
	return true
}

// X returns current X position.
func (it *LineIterator) X() int { return it.currentX }

// Y returns current Y position.
func (it *LineIterator) Y() int { return it.currentY }
