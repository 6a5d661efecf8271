package assets

import (
	"testing"

	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
)

func TestGenerateSpriteDeterministic(t *testing.T) {
	style := content.SpriteStyle{Shape: "triangle", Glyph: "▲", Color: "red", Width: 5, Height: 3}

	a, err := GenerateSprite(style)
	if err != nil {
		t.Fatalf("GenerateSprite() error: %v", err)
	}
	b, err := GenerateSprite(style)
	if err != nil {
		t.Fatalf("GenerateSprite() error: %v", err)
	}

	if a.Width != b.Width || a.Height != b.Height {
		t.Fatal("dimensions differ between runs")
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				t.Fatalf("cell (%d, %d) differs between identical configs", x, y)
			}
		}
	}
}

func TestGenerateSpriteShapes(t *testing.T) {
	tests := []struct {
		name   string
		style  content.SpriteStyle
		filled [][2]int // cells that must be opaque
		empty  [][2]int // cells that must be transparent
	}{
		{
			name:   "box fills everything",
			style:  content.SpriteStyle{Shape: "box", Color: "green", Width: 3, Height: 2},
			filled: [][2]int{{0, 0}, {2, 0}, {0, 1}, {2, 1}},
		},
		{
			name:   "triangle apex on top, base on bottom",
			style:  content.SpriteStyle{Shape: "triangle", Color: "red", Width: 5, Height: 3},
			filled: [][2]int{{2, 0}, {1, 1}, {3, 1}, {0, 2}, {4, 2}},
			empty:  [][2]int{{0, 0}, {4, 0}},
		},
		{
			name:   "diamond corners are transparent",
			style:  content.SpriteStyle{Shape: "diamond", Color: "cyan", Width: 5, Height: 5},
			filled: [][2]int{{2, 0}, {0, 2}, {4, 2}, {2, 4}, {2, 2}},
			empty:  [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}},
		},
		{
			name:   "circle corners are transparent",
			style:  content.SpriteStyle{Shape: "circle", Color: "blue", Width: 5, Height: 5},
			filled: [][2]int{{2, 2}, {2, 0}, {0, 2}},
			empty:  [][2]int{{0, 0}, {4, 4}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sprite, err := GenerateSprite(tc.style)
			if err != nil {
				t.Fatalf("GenerateSprite() error: %v", err)
			}
			for _, p := range tc.filled {
				if sprite.Cell(p[0], p[1]).Rune == 0 {
					t.Errorf("cell (%d, %d) should be filled", p[0], p[1])
				}
			}
			for _, p := range tc.empty {
				if sprite.Cell(p[0], p[1]).Rune != 0 {
					t.Errorf("cell (%d, %d) should be transparent", p[0], p[1])
				}
			}
		})
	}
}

func TestGenerateSpriteAppliesGlyphAndColor(t *testing.T) {
	style := content.SpriteStyle{Shape: "box", Glyph: "#", Color: "bright_red", Width: 2, Height: 2}

	sprite, err := GenerateSprite(style)
	if err != nil {
		t.Fatalf("GenerateSprite() error: %v", err)
	}

	got := sprite.Cell(0, 0)
	if got.Rune != '#' {
		t.Errorf("fill rune = %q, expected '#'", got.Rune)
	}
	if got.Color != core.ColorBrightRed {
		t.Errorf("fill color = %v, expected bright red", got.Color)
	}
}

func TestGenerateSpriteUnknownShape(t *testing.T) {
	_, err := GenerateSprite(content.SpriteStyle{Shape: "pentagon", Width: 3, Height: 3})
	if err == nil {
		t.Error("GenerateSprite() with unknown shape should fail")
	}
}

func TestSpriteBlitSkipsTransparentCells(t *testing.T) {
	sprite, err := GenerateSprite(content.SpriteStyle{Shape: "triangle", Glyph: "^", Color: "red", Width: 3, Height: 2})
	if err != nil {
		t.Fatalf("GenerateSprite() error: %v", err)
	}

	screen := core.NewScreen(10, 10)
	screen.Set(2, 2, '.') // under the triangle's transparent top-left corner
	sprite.Blit(screen, 2, 2)

	if screen.Get(2, 2) != '.' {
		t.Error("transparent sprite cell overwrote the screen")
	}
	if screen.Get(3, 2) != '^' {
		t.Error("opaque sprite cell did not draw")
	}
}
