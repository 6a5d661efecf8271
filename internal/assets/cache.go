package assets

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphrun/internal/content"
)

// GenerationError reports a generator failure for one asset key.
// Boot treats it as fatal: the runtime must not reach gameplay with a
// partially populated cache.
type GenerationError struct {
	Key string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("assets: generating %q: %v", e.Key, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Cache maps asset keys to generated assets. It is populated by the boot
// pipeline, sealed, and read-only for the rest of the process; gameplay
// lookups never trigger generation.
type Cache struct {
	sprites map[string]*Sprite
	sounds  map[string]*Sound
	sealed  bool
}

// NewCache creates an empty, unsealed cache.
func NewCache() *Cache {
	return &Cache{
		sprites: make(map[string]*Sprite),
		sounds:  make(map[string]*Sound),
	}
}

// Generate runs every generator over the configuration tables and fills the
// cache, then seals it. Keys are processed in sorted order so logs and
// failures are reproducible. Any failure aborts with a GenerationError.
func (c *Cache) Generate(cfg *content.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if c.sealed {
		return fmt.Errorf("assets: cache is sealed")
	}

	for _, key := range sortedKeys(cfg.Sprites) {
		sprite, err := GenerateSprite(cfg.Sprites[key])
		if err != nil {
			return &GenerationError{Key: key, Err: err}
		}
		if err := c.addSprite(key, sprite); err != nil {
			return err
		}
		logger.Debug("generated sprite", "key", key,
			"size", fmt.Sprintf("%dx%d", sprite.Width, sprite.Height))
	}

	for _, key := range sortedKeys(cfg.Sounds) {
		sound, err := GenerateSound(cfg.Sounds[key])
		if err != nil {
			return &GenerationError{Key: key, Err: err}
		}
		if err := c.addSound(key, sound); err != nil {
			return err
		}
		logger.Debug("generated sound", "key", key, "seconds", sound.Duration())
	}

	c.sealed = true
	logger.Info("asset cache populated",
		"sprites", len(c.sprites), "sounds", len(c.sounds))
	return nil
}

func (c *Cache) addSprite(key string, s *Sprite) error {
	if _, exists := c.sprites[key]; exists {
		return fmt.Errorf("assets: duplicate sprite key %q", key)
	}
	c.sprites[key] = s
	return nil
}

func (c *Cache) addSound(key string, s *Sound) error {
	if _, exists := c.sounds[key]; exists {
		return fmt.Errorf("assets: duplicate sound key %q", key)
	}
	c.sounds[key] = s
	return nil
}

// Sprite looks up a generated sprite by key.
func (c *Cache) Sprite(key string) (*Sprite, bool) {
	s, ok := c.sprites[key]
	return s, ok
}

// Sound looks up a generated sound by key.
func (c *Cache) Sound(key string) (*Sound, bool) {
	s, ok := c.sounds[key]
	return s, ok
}

// Sealed reports whether boot-time population has completed.
func (c *Cache) Sealed() bool {
	return c.sealed
}

// Len returns the total number of cached assets.
func (c *Cache) Len() int {
	return len(c.sprites) + len(c.sounds)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
