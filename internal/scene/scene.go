// Package scene implements the runtime's state machine: Boot generates and
// caches every configured asset, Menu offers the content to play, Play owns
// the live actor collection. Exactly one scene is active at a time and each
// scene tears down its own event subscriptions on exit.
package scene

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphrun/internal/assets"
	"github.com/vovakirdan/glyphrun/internal/bus"
	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
	"github.com/vovakirdan/glyphrun/internal/input"
)

// Scene names used with Machine.Go.
const (
	NameBoot = "boot"
	NameMenu = "menu"
	NamePlay = "play"
)

// Bus event names owned by the scene layer.
const (
	// EventQuitRequested asks the platform loop to stop.
	EventQuitRequested = "app:quit"
	// EventMenuMoved fires when the menu cursor moves, mostly for audio.
	EventMenuMoved = "menu:moved"
)

// Context carries the explicitly-constructed shared singletons every scene
// uses: the bus, the input system, the asset cache, and the loaded content.
// The type table and audio player are filled in by the boot scene.
type Context struct {
	Logger  *log.Logger
	Bus     *bus.Bus
	Input   *input.System
	Cache   *assets.Cache
	Content *content.Config

	// Types shares one immutable record per entity type across all actors.
	// Built once during boot.
	Types map[string]*content.EntityType

	// Audio is nil until boot completes speaker setup.
	Audio *assets.Player
	// AudioEnabled controls whether boot opens the audio device at all.
	AudioEnabled bool

	Width  int
	Height int
}

// Scene is one mutually-exclusive application state. Exit must revoke every
// bus subscription the scene or its actors registered.
type Scene interface {
	Name() string
	Enter()
	Update(dt float64)
	Draw(dst *core.Screen)
	Exit()
}

// Machine owns the active scene and applies transitions at frame boundaries:
// a Go call during Update takes effect at the start of the next Update, so a
// scene is never torn down while its own collections are mid-iteration.
type Machine struct {
	logger  *log.Logger
	scenes  map[string]Scene
	current Scene
	pending string
}

// NewMachine creates an empty machine. A nil logger falls back to the
// package default.
func NewMachine(logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	return &Machine{
		logger: logger,
		scenes: make(map[string]Scene),
	}
}

// Add registers a scene under its name.
func (m *Machine) Add(s Scene) {
	m.scenes[s.Name()] = s
}

// Go requests a transition to the named scene. Deferred: the switch happens
// at the start of the next Update. The transition is atomic; the old scene
// fully exits before the new scene enters. Requesting the current scene again
// restarts it.
func (m *Machine) Go(name string) {
	m.pending = name
}

// Current returns the active scene, nil before the first Update.
func (m *Machine) Current() Scene {
	return m.current
}

// Update applies any pending transition, then advances the active scene.
func (m *Machine) Update(dt float64) {
	m.applyPending()
	if m.current != nil {
		m.current.Update(dt)
	}
}

func (m *Machine) applyPending() {
	if m.pending == "" {
		return
	}
	name := m.pending
	m.pending = ""
	next, ok := m.scenes[name]
	if !ok {
		m.logger.Error("transition to unknown scene dropped", "scene", name)
		return
	}

	if m.current != nil {
		m.current.Exit()
	}
	m.logger.Debug("scene transition", "to", next.Name())
	m.current = next
	m.current.Enter()
}

// Draw renders the active scene into the screen buffer. All Update work for
// the frame has completed by the time the platform calls Draw.
func (m *Machine) Draw(dst *core.Screen) {
	if m.current != nil {
		m.current.Draw(dst)
	}
}

// wireTriggers subscribes the configured event-to-sound mappings into the
// given scope, making audio a plain bus subscriber alongside gameplay
// handlers. Missing sounds were rejected at validation, so lookups here only
// guard against a nil cache during tests.
func wireTriggers(ctx *Context, scope *bus.Scope) {
	for event, soundKey := range ctx.Content.Triggers {
		sound, ok := ctx.Cache.Sound(soundKey)
		if !ok {
			ctx.Logger.Warn("trigger references missing sound", "event", event, "sound", soundKey)
			continue
		}
		scope.Subscribe(event, func(bus.Event) {
			ctx.Audio.Play(sound)
		})
	}
}
