package tui

import "math"

// Touch regions a terminal mouse press can land in. The screen splits into a
// 3x3 grid: the middle cell is center, everything else resolves to the
// dominant side.
var touchRegions = []string{"left", "right", "top", "bottom", "center"}

// touchRegion maps a terminal cell to a named touch region.
func touchRegion(x, y, w, h int) string {
	if w <= 0 || h <= 0 {
		return "center"
	}

	col := 3 * x / w
	row := 3 * y / h
	if col == 1 && row == 1 {
		return "center"
	}

	// Corners resolve by the dominant normalized displacement.
	nx := float64(x)/float64(w) - 0.5
	ny := float64(y)/float64(h) - 0.5
	if math.Abs(nx) >= math.Abs(ny) {
		if nx < 0 {
			return "left"
		}
		return "right"
	}
	if ny < 0 {
		return "top"
	}
	return "bottom"
}
