package node

import "math"

// cellSize returns 2^(-level), the side length of a cell at the given
// level in the unit square.
func cellSize(level int) float64 {
	return math.Pow(2, -float64(level))
}

// halfCellSize returns half the side length of a cell at the given level.
func halfCellSize(level int) float64 {
	return cellSize(level) / 2
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
