// Package content provides YAML-based loading and validation of the runtime's
// configuration tables: entity types, sprite styles, sound styles, input
// bindings, and the world layout. All tables are loaded once before boot and
// never mutated afterward; entity records are shared by reference across every
// actor of that type.
package content

// Config is the full configuration document for one game.
type Config struct {
	World    WorldConfig            `yaml:"world"`
	Entities map[string]EntityType  `yaml:"entities"`
	Sprites  map[string]SpriteStyle `yaml:"sprites"`
	Sounds   map[string]SoundStyle  `yaml:"sounds"`
	Bindings map[string][]string    `yaml:"bindings"` // logical action -> physical signals
	Triggers map[string]string      `yaml:"triggers"` // event name -> sound key
}

// WorldConfig describes what the play scene instantiates.
type WorldConfig struct {
	Hero   string  `yaml:"hero"` // entity type key of the player actor
	Spawns []Spawn `yaml:"spawns"`
}

// Spawn places one non-player actor in the world.
type Spawn struct {
	Type string  `yaml:"type"` // entity type key
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// EntityType is the immutable stat record behind every actor of one type.
// All behavioral variety between characters lives here, never in code.
type EntityType struct {
	Speed           float64 `yaml:"speed"`           // cells per second
	HP              int     `yaml:"hp"`              // starting hit points
	Sprite          string  `yaml:"sprite"`          // sprite style key
	Damage          int     `yaml:"damage"`          // contact damage dealt to the hero
	Points          int     `yaml:"points"`          // score value when destroyed
	Invulnerability float64 `yaml:"invulnerability"` // seconds of immunity after a hit
}

// SpriteStyle describes how to procedurally render one visual asset.
type SpriteStyle struct {
	Shape  string `yaml:"shape"` // box, triangle, diamond, circle
	Glyph  string `yaml:"glyph"` // single fill rune
	Color  string `yaml:"color"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// FillRune returns the style's glyph as a rune, defaulting to a solid block.
func (s SpriteStyle) FillRune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return '█'
}

// SoundStyle describes how to synthesize one audio asset.
type SoundStyle struct {
	Wave      string  `yaml:"wave"`      // sine, square, saw, noise
	Frequency float64 `yaml:"frequency"` // Hz
	Duration  float64 `yaml:"duration"`  // seconds
	Attack    float64 `yaml:"attack"`    // envelope attack, seconds
	Release   float64 `yaml:"release"`   // envelope release, seconds
	Gain      float64 `yaml:"gain"`      // 0..1, defaults to 1
}
