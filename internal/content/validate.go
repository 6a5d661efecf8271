package content

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/glyphrun/internal/core"
)

// ConfigError reports one invalid or dangling reference in a configuration
// document. A missing asset or entity key is a content bug that must surface
// before gameplay, never be silently substituted.
type ConfigError struct {
	Section string // table the error was found in
	Key     string // entry key within the table
	Msg     string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("content: %s: %s", e.Section, e.Msg)
	}
	return fmt.Sprintf("content: %s[%s]: %s", e.Section, e.Key, e.Msg)
}

var spriteShapes = map[string]bool{
	"box":      true,
	"triangle": true,
	"diamond":  true,
	"circle":   true,
}

var soundWaves = map[string]bool{
	"sine":   true,
	"square": true,
	"saw":    true,
	"noise":  true,
}

// Validate cross-checks every reference in the document: entity sprite keys,
// world entity keys, trigger sound keys, shape and wave names, colors, and
// numeric sanity. Returns all findings joined, or nil.
func Validate(cfg *Config) error {
	var errs []error

	fail := func(section, key, format string, args ...any) {
		errs = append(errs, &ConfigError{
			Section: section,
			Key:     key,
			Msg:     fmt.Sprintf(format, args...),
		})
	}

	for key, et := range cfg.Entities {
		if et.Sprite == "" {
			fail("entities", key, "missing sprite key")
		} else if _, ok := cfg.Sprites[et.Sprite]; !ok {
			fail("entities", key, "references unknown sprite %q", et.Sprite)
		}
		if et.Speed < 0 {
			fail("entities", key, "negative speed %v", et.Speed)
		}
		if et.HP <= 0 {
			fail("entities", key, "hp must be positive, got %d", et.HP)
		}
	}

	for key, style := range cfg.Sprites {
		if !spriteShapes[style.Shape] {
			fail("sprites", key, "unknown shape %q", style.Shape)
		}
		if style.Width <= 0 || style.Height <= 0 {
			fail("sprites", key, "dimensions must be positive, got %dx%d", style.Width, style.Height)
		}
		if _, err := core.ParseColor(style.Color); err != nil {
			fail("sprites", key, "%v", err)
		}
	}

	for key, style := range cfg.Sounds {
		if !soundWaves[style.Wave] {
			fail("sounds", key, "unknown wave %q", style.Wave)
		}
		if style.Frequency <= 0 && style.Wave != "noise" {
			fail("sounds", key, "frequency must be positive, got %v", style.Frequency)
		}
		if style.Duration <= 0 {
			fail("sounds", key, "duration must be positive, got %v", style.Duration)
		}
		if style.Gain < 0 || style.Gain > 1 {
			fail("sounds", key, "gain must be within [0, 1], got %v", style.Gain)
		}
	}

	if cfg.World.Hero == "" {
		fail("world", "", "missing hero entity key")
	} else if _, ok := cfg.Entities[cfg.World.Hero]; !ok {
		fail("world", "", "hero references unknown entity %q", cfg.World.Hero)
	}
	for i, spawn := range cfg.World.Spawns {
		if _, ok := cfg.Entities[spawn.Type]; !ok {
			fail("world", fmt.Sprintf("spawns[%d]", i), "references unknown entity %q", spawn.Type)
		}
	}

	for action, signals := range cfg.Bindings {
		if len(signals) == 0 {
			fail("bindings", action, "no physical signals mapped")
		}
	}

	for event, soundKey := range cfg.Triggers {
		if _, ok := cfg.Sounds[soundKey]; !ok {
			fail("triggers", event, "references unknown sound %q", soundKey)
		}
	}

	return errors.Join(errs...)
}
