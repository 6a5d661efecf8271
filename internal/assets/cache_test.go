package assets

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphrun/internal/content"
)

func testConfig() *content.Config {
	return &content.Config{
		Sprites: map[string]content.SpriteStyle{
			"hero_fast": {Shape: "triangle", Color: "red", Width: 5, Height: 3},
			"drone":     {Shape: "diamond", Color: "cyan", Width: 3, Height: 3},
		},
		Sounds: map[string]content.SoundStyle{
			"jump": {Wave: "square", Frequency: 440, Duration: 0.05, Gain: 0.5},
			"hit":  {Wave: "noise", Frequency: 220, Duration: 0.05, Gain: 0.5},
		},
	}
}

func TestGeneratePopulatesEveryKey(t *testing.T) {
	cfg := testConfig()
	cache := NewCache()

	if err := cache.Generate(cfg, log.New(io.Discard)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for key := range cfg.Sprites {
		if _, ok := cache.Sprite(key); !ok {
			t.Errorf("sprite %q missing from cache after generation", key)
		}
	}
	for key := range cfg.Sounds {
		if _, ok := cache.Sound(key); !ok {
			t.Errorf("sound %q missing from cache after generation", key)
		}
	}
	if !cache.Sealed() {
		t.Error("cache should be sealed after generation")
	}
	if cache.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", cache.Len())
	}
}

func TestGenerateFailureNamesOffendingKey(t *testing.T) {
	cfg := testConfig()
	cfg.Sprites["broken"] = content.SpriteStyle{Shape: "pentagon", Width: 3, Height: 3}

	cache := NewCache()
	err := cache.Generate(cfg, log.New(io.Discard))
	if err == nil {
		t.Fatal("Generate() should fail on a broken style")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error type = %T, expected *GenerationError", err)
	}
	if genErr.Key != "broken" {
		t.Errorf("GenerationError.Key = %q, expected \"broken\"", genErr.Key)
	}
	if cache.Sealed() {
		t.Error("cache must not seal after a failed generation")
	}
}

func TestGenerateTwiceFails(t *testing.T) {
	cache := NewCache()
	if err := cache.Generate(testConfig(), log.New(io.Discard)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if err := cache.Generate(testConfig(), log.New(io.Discard)); err == nil {
		t.Error("Generate() on a sealed cache should fail")
	}
}

func TestCacheMissingKey(t *testing.T) {
	cache := NewCache()
	if err := cache.Generate(testConfig(), log.New(io.Discard)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, ok := cache.Sprite("ghost"); ok {
		t.Error("Sprite() returned ok for a missing key")
	}
	if _, ok := cache.Sound("ghost"); ok {
		t.Error("Sound() returned ok for a missing key")
	}
}

func TestDisabledPlayerPlayIsNoOp(t *testing.T) {
	player, err := NewPlayer(false)
	if err != nil {
		t.Fatalf("NewPlayer(false) error: %v", err)
	}
	defer player.Close()

	sound, err := GenerateSound(content.SoundStyle{Wave: "sine", Frequency: 440, Duration: 0.01, Gain: 1})
	if err != nil {
		t.Fatal(err)
	}

	// Must not touch the speaker or panic.
	player.Play(sound)
	player.Play(nil)
}
