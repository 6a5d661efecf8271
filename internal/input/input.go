// Package input maps physical signals (key codes, touch regions) to logical
// actions declared in the content bindings table. Action edges are published
// on the event bus; held state is exposed as a polling query so movement does
// not generate an event storm.
package input

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphrun/internal/bus"
)

// Physical signal namespaces. The platform layer is the only producer of
// signal names; everything else deals in logical actions.
const (
	keyPrefix   = "key:"
	touchPrefix = "touch:"
)

// Logical action names the runtime itself reacts to. The bindings table maps
// physical signals onto these; content may bind additional custom actions.
const (
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionUp      = "up"
	ActionDown    = "down"
	ActionJump    = "jump"
	ActionConfirm = "confirm"
	ActionBack    = "back"
	ActionPause   = "pause"
)

// KeySignal returns the physical signal name for a keyboard key.
// The space key is normalized to a readable name for config files.
func KeySignal(key string) string {
	if key == " " {
		key = "space"
	}
	return keyPrefix + key
}

// TouchSignal returns the physical signal name for a named touch region.
func TouchSignal(region string) string {
	return touchPrefix + region
}

// PressedEvent returns the bus event name emitted on an action's up-to-down edge.
func PressedEvent(action string) string {
	return "action:" + action + ":pressed"
}

// ReleasedEvent returns the bus event name emitted on an action's down-to-up edge.
func ReleasedEvent(action string) string {
	return "action:" + action + ":released"
}

// System tracks the down/up state of every bound physical signal and derives
// each logical action's aggregate state: down if any mapped signal is down.
type System struct {
	bus    *bus.Bus
	logger *log.Logger

	actions    map[string][]string // action -> mapped signals
	bySignal   map[string][]string // signal -> actions, sorted for stable edges
	signalDown map[string]bool
	actionDown map[string]bool
}

// NewSystem builds the mapping tables from the bindings config.
// A nil logger falls back to the package default.
func NewSystem(b *bus.Bus, bindings map[string][]string, logger *log.Logger) *System {
	if logger == nil {
		logger = log.Default()
	}

	s := &System{
		bus:        b,
		logger:     logger,
		actions:    make(map[string][]string, len(bindings)),
		bySignal:   make(map[string][]string),
		signalDown: make(map[string]bool),
		actionDown: make(map[string]bool),
	}

	for action, signals := range bindings {
		s.actions[action] = append([]string(nil), signals...)
		for _, sig := range signals {
			s.bySignal[sig] = append(s.bySignal[sig], action)
		}
	}
	for sig := range s.bySignal {
		sort.Strings(s.bySignal[sig])
	}
	return s
}

// SignalDown records a physical signal going down and emits pressed events
// for any logical action whose aggregate state flips to down. Signals with no
// binding are ignored, never an error.
func (s *System) SignalDown(signal string) {
	actions, ok := s.bySignal[signal]
	if !ok {
		s.logger.Debug("ignoring unmapped input signal", "signal", signal)
		return
	}
	if s.signalDown[signal] {
		return // key repeat, no new edge
	}
	s.signalDown[signal] = true

	for _, action := range actions {
		if s.actionDown[action] {
			continue // another mapped signal already holds it down
		}
		s.actionDown[action] = true
		s.bus.Emit(PressedEvent(action), nil)
	}
}

// SignalUp records a physical signal going up and emits released events for
// any logical action whose aggregate state flips to up.
func (s *System) SignalUp(signal string) {
	actions, ok := s.bySignal[signal]
	if !ok {
		s.logger.Debug("ignoring unmapped input signal", "signal", signal)
		return
	}
	if !s.signalDown[signal] {
		return
	}
	s.signalDown[signal] = false

	for _, action := range actions {
		if !s.actionDown[action] {
			continue
		}
		if s.anySignalDown(action) {
			continue // still held through another signal
		}
		s.actionDown[action] = false
		s.bus.Emit(ReleasedEvent(action), nil)
	}
}

func (s *System) anySignalDown(action string) bool {
	for _, sig := range s.actions[action] {
		if s.signalDown[sig] {
			return true
		}
	}
	return false
}

// IsActive reports whether the logical action is currently held down.
// Gameplay polls this every frame for continuous actions like movement.
func (s *System) IsActive(action string) bool {
	return s.actionDown[action]
}

// Axis collapses an opposing action pair into -1, 0, or +1.
// Both held cancels out.
func (s *System) Axis(negative, positive string) float64 {
	var v float64
	if s.IsActive(negative) {
		v--
	}
	if s.IsActive(positive) {
		v++
	}
	return v
}

// ReleaseAll forces every held signal up, emitting released edges as usual.
// Called on scene transitions so no action stays stuck across states.
func (s *System) ReleaseAll() {
	for sig, down := range s.signalDown {
		if down {
			s.SignalUp(sig)
		}
	}
}
