// Package assets implements the procedural asset pipeline: pure generators
// that materialize drawable sprites and playable sounds from style configs,
// and the boot-populated cache gameplay reads them from.
package assets

import (
	"fmt"
	"math"

	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
)

// Sprite is an immutable generated visual asset: a small cell grid with
// transparent cells marked by a zero rune.
type Sprite struct {
	Width  int
	Height int
	cells  []core.Cell
}

// Cell returns the cell at (x, y). Out-of-bounds positions are transparent.
func (s *Sprite) Cell(x, y int) core.Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return core.Cell{}
	}
	return s.cells[y*s.Width+x]
}

// Blit draws the sprite onto dst with its top-left corner at (x, y),
// skipping transparent cells.
func (s *Sprite) Blit(dst *core.Screen, x, y int) {
	for sy := 0; sy < s.Height; sy++ {
		for sx := 0; sx < s.Width; sx++ {
			c := s.cells[sy*s.Width+sx]
			if c.Rune == 0 {
				continue
			}
			dst.SetCell(x+sx, y+sy, c)
		}
	}
}

// Bounds returns the sprite's rectangle at the given position, used for
// collision detection.
func (s *Sprite) Bounds(x, y int) core.Rect {
	return core.NewRect(x, y, s.Width, s.Height)
}

// GenerateSprite rasterizes a style config into a sprite. Pure and
// deterministic: the same style always produces cell-identical output, and
// no mutable global state is consulted.
func GenerateSprite(style content.SpriteStyle) (*Sprite, error) {
	color, err := core.ParseColor(style.Color)
	if err != nil {
		return nil, err
	}
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("sprite dimensions must be positive, got %dx%d", style.Width, style.Height)
	}

	inside, err := shapeFunc(style.Shape)
	if err != nil {
		return nil, err
	}

	w, h := style.Width, style.Height
	sprite := &Sprite{
		Width:  w,
		Height: h,
		cells:  make([]core.Cell, w*h),
	}
	fill := core.Cell{Rune: style.FillRune(), Color: color}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if inside(x, y, w, h) {
				sprite.cells[y*w+x] = fill
			}
		}
	}
	return sprite, nil
}

// shapeFunc returns the point-inclusion predicate for a shape name.
// Predicates work on cell centers in normalized coordinates.
func shapeFunc(shape string) (func(x, y, w, h int) bool, error) {
	switch shape {
	case "box":
		return func(x, y, w, h int) bool { return true }, nil

	case "triangle":
		// Apex centered on the top row, base across the bottom row.
		return func(x, y, w, h int) bool {
			cx := float64(w-1) / 2
			var t float64 = 1
			if h > 1 {
				t = float64(y) / float64(h-1)
			}
			span := t * float64(w-1) / 2
			return math.Abs(float64(x)-cx) <= span+1e-9
		}, nil

	case "diamond":
		return func(x, y, w, h int) bool {
			cx := float64(w-1) / 2
			cy := float64(h-1) / 2
			dx, dy := 0.0, 0.0
			if cx > 0 {
				dx = math.Abs(float64(x)-cx) / cx
			}
			if cy > 0 {
				dy = math.Abs(float64(y)-cy) / cy
			}
			return dx+dy <= 1+1e-9
		}, nil

	case "circle":
		// Ellipse fitted to the bounding box.
		return func(x, y, w, h int) bool {
			cx := float64(w-1) / 2
			cy := float64(h-1) / 2
			dx, dy := 0.0, 0.0
			if cx > 0 {
				dx = (float64(x) - cx) / cx
			}
			if cy > 0 {
				dy = (float64(y) - cy) / cy
			}
			return dx*dx+dy*dy <= 1+1e-9
		}, nil
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}
