// Package actor implements the single data-driven entity representation.
// There is one concrete Actor type; all variety between characters comes from
// the immutable entity-type record and the generated sprite bound at
// construction, never from subclassing or type switches.
package actor

import (
	"fmt"

	"github.com/vovakirdan/glyphrun/internal/assets"
	"github.com/vovakirdan/glyphrun/internal/bus"
	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
	"github.com/vovakirdan/glyphrun/internal/input"
)

// Bus event names emitted by actors.
const (
	EventDamaged   = "actor:damaged"
	EventDestroyed = "actor:destroyed"
)

// dodgeDuration is the brief immunity window granted by the jump action.
const dodgeDuration = 0.4

// Actor is one live entity: mutable runtime state plus non-owning references
// to its type record and cached sprite. Both references are resolved at
// construction; Update and Draw never branch on the entity type.
type Actor struct {
	typeKey string
	typ     *content.EntityType
	sprite  *assets.Sprite

	X, Y   float64
	VX, VY float64
	HP     int

	invuln    float64 // seconds of immunity remaining
	destroyed bool

	bus   *bus.Bus
	scope *bus.Scope
	in    *input.System // nil for uncontrolled actors
}

// New creates an actor of the given type at a position, resolving its sprite
// from the cache now rather than at draw time. A missing sprite key is a
// fatal configuration error. Passing a non-nil input system makes the actor
// player-controlled: it polls movement actions each frame and subscribes to
// the jump action on the bus.
func New(typeKey string, typ *content.EntityType, cache *assets.Cache, b *bus.Bus, in *input.System, x, y float64) (*Actor, error) {
	sprite, ok := cache.Sprite(typ.Sprite)
	if !ok {
		return nil, fmt.Errorf("actor: entity %q references sprite %q missing from cache", typeKey, typ.Sprite)
	}

	a := &Actor{
		typeKey: typeKey,
		typ:     typ,
		sprite:  sprite,
		X:       x,
		Y:       y,
		HP:      typ.HP,
		bus:     b,
		scope:   b.NewScope(),
		in:      in,
	}

	if in != nil {
		a.scope.Subscribe(input.PressedEvent(input.ActionJump), func(bus.Event) {
			a.onJump()
		})
	}
	return a, nil
}

// onJump grants a short dodge window. Destroyed actors have their scope
// closed, so this can only run while alive.
func (a *Actor) onJump() {
	if a.invuln < dodgeDuration {
		a.invuln = dodgeDuration
	}
}

// Update advances position by the current velocity scaled by delta time and
// decays timed state. Controlled actors derive velocity from the held
// movement actions times the type's speed stat.
func (a *Actor) Update(dt float64) {
	if a.destroyed {
		return
	}

	if a.in != nil {
		a.VX = a.in.Axis(input.ActionLeft, input.ActionRight) * a.typ.Speed
		a.VY = a.in.Axis(input.ActionUp, input.ActionDown) * a.typ.Speed
	}

	a.X += a.VX * dt
	a.Y += a.VY * dt

	if a.invuln > 0 {
		a.invuln -= dt
		if a.invuln < 0 {
			a.invuln = 0
		}
	}
}

// Draw blits the resolved sprite at the actor's current position.
func (a *Actor) Draw(dst *core.Screen) {
	if a.destroyed {
		return
	}
	a.sprite.Blit(dst, int(a.X), int(a.Y))
}

// Damage applies hit points of damage, respecting the immunity window.
// Reports whether the hit landed. Depleting HP transitions the actor to its
// terminal destroyed state: its subscriptions are revoked so it stops
// reacting to input, and the owning scene culls it on the next update pass.
func (a *Actor) Damage(points int) bool {
	if a.destroyed || a.invuln > 0 || points <= 0 {
		return false
	}

	a.HP -= points
	if a.HP <= 0 {
		a.HP = 0
		a.destroy()
		a.bus.Emit(EventDestroyed, a)
		return true
	}

	a.invuln = a.typ.Invulnerability
	a.bus.Emit(EventDamaged, a)
	return true
}

func (a *Actor) destroy() {
	a.destroyed = true
	a.scope.Close()
}

// Destroyed reports whether the actor has reached its terminal state.
func (a *Actor) Destroyed() bool {
	return a.destroyed
}

// Invulnerable reports whether the actor is currently immune to damage.
func (a *Actor) Invulnerable() bool {
	return a.invuln > 0
}

// Release revokes the actor's event subscriptions. The owning scene calls
// this when removing the actor from its collection; idempotent, and already
// done for destroyed actors.
func (a *Actor) Release() {
	a.scope.Close()
}

// TypeKey returns the entity type key the actor was built from.
func (a *Actor) TypeKey() string {
	return a.typeKey
}

// Type returns the shared immutable stat record.
func (a *Actor) Type() *content.EntityType {
	return a.typ
}

// Bounds returns the actor's collision rectangle.
func (a *Actor) Bounds() core.Rect {
	return a.sprite.Bounds(int(a.X), int(a.Y))
}

// ClampTo keeps the actor inside the given screen dimensions.
func (a *Actor) ClampTo(width, height int) {
	maxX := float64(width - a.sprite.Width)
	maxY := float64(height - a.sprite.Height)
	a.X = core.ClampF(a.X, 0, maxX)
	a.Y = core.ClampF(a.Y, 0, maxY)
}
