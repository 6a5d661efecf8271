package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/glyphrun/internal/actor"
	"github.com/vovakirdan/glyphrun/internal/bus"
	"github.com/vovakirdan/glyphrun/internal/core"
	"github.com/vovakirdan/glyphrun/internal/input"
)

// Play is the gameplay scene. It owns the live actor collection: the hero,
// built from the world config's hero entity type, and the spawned hostiles
// that chase it. Dodging (jump) grants the hero a brief immunity window
// during which contact destroys the hostile instead.
type Play struct {
	ctx     *Context
	machine *Machine

	scope    *bus.Scope
	hero     *actor.Actor
	hostiles []*actor.Actor

	score  int
	paused bool
	over   bool
	won    bool
}

// NewPlay creates the play scene.
func NewPlay(ctx *Context, machine *Machine) *Play {
	return &Play{ctx: ctx, machine: machine}
}

func (p *Play) Name() string { return NamePlay }

func (p *Play) Enter() {
	ctx := p.ctx
	p.score = 0
	p.paused = false
	p.over = false
	p.won = false

	p.scope = ctx.Bus.NewScope()
	wireTriggers(ctx, p.scope)

	p.scope.Subscribe(input.PressedEvent(input.ActionPause), func(bus.Event) {
		if !p.over {
			p.paused = !p.paused
		}
	})
	p.scope.Subscribe(input.PressedEvent(input.ActionBack), func(bus.Event) {
		p.machine.Go(NameMenu)
	})
	p.scope.Subscribe(input.PressedEvent(input.ActionConfirm), func(bus.Event) {
		if p.over {
			p.machine.Go(NameMenu)
		}
	})
	p.scope.Subscribe(actor.EventDestroyed, func(ev bus.Event) {
		destroyed, ok := ev.Payload.(*actor.Actor)
		if !ok || destroyed == p.hero {
			return
		}
		p.score += destroyed.Type().Points
	})

	world := ctx.Content.World
	hero, err := actor.New(world.Hero, ctx.Types[world.Hero], ctx.Cache,
		ctx.Bus, ctx.Input, float64(ctx.Width)/2, float64(ctx.Height)/2)
	if err != nil {
		// Validation guarantees the references; reaching this is a content
		// pipeline bug, and playing without a hero would hide it.
		panic(fmt.Sprintf("play: %v", err))
	}
	p.hero = hero

	p.hostiles = p.hostiles[:0]
	for _, spawn := range world.Spawns {
		hostile, err := actor.New(spawn.Type, ctx.Types[spawn.Type], ctx.Cache,
			ctx.Bus, nil, spawn.X, spawn.Y)
		if err != nil {
			panic(fmt.Sprintf("play: %v", err))
		}
		p.hostiles = append(p.hostiles, hostile)
	}
}

func (p *Play) Update(dt float64) {
	if p.over || p.paused {
		return
	}

	p.hero.Update(dt)
	p.hero.ClampTo(p.ctx.Width, p.ctx.Height)

	for _, hostile := range p.hostiles {
		p.steer(hostile)
		hostile.Update(dt)
		hostile.ClampTo(p.ctx.Width, p.ctx.Height)

		if hostile.Destroyed() || !hostile.Bounds().Intersects(p.hero.Bounds()) {
			continue
		}
		if p.hero.Invulnerable() {
			hostile.Damage(p.hero.Type().Damage)
		} else {
			p.hero.Damage(hostile.Type().Damage)
		}
	}

	p.cullDestroyed()

	if p.hero.Destroyed() {
		p.over = true
		return
	}
	if len(p.hostiles) == 0 {
		p.over = true
		p.won = true
	}
}

// steer points a hostile's velocity at the hero; motion itself stays plain
// delta-time-scaled linear integration inside Actor.Update.
func (p *Play) steer(h *actor.Actor) {
	dx := p.hero.X - h.X
	dy := p.hero.Y - h.Y
	dist := math.Hypot(dx, dy)
	if dist < 0.5 {
		h.VX, h.VY = 0, 0
		return
	}
	speed := h.Type().Speed
	h.VX = dx / dist * speed
	h.VY = dy / dist * speed
}

// cullDestroyed removes destroyed hostiles after the update pass, never while
// the collection is being iterated.
func (p *Play) cullDestroyed() {
	alive := p.hostiles[:0]
	for _, h := range p.hostiles {
		if h.Destroyed() {
			continue
		}
		alive = append(alive, h)
	}
	// Zero the tail so dropped actors are not pinned by the backing array.
	for i := len(alive); i < len(p.hostiles); i++ {
		p.hostiles[i] = nil
	}
	p.hostiles = alive
}

func (p *Play) Draw(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.NewRect(0, 0, w, h))

	for _, hostile := range p.hostiles {
		hostile.Draw(dst)
	}
	p.hero.Draw(dst)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" hp %d ", p.hero.HP), core.ColorBrightRed)
	dst.DrawTextColored(w-14, 0, fmt.Sprintf(" score %d ", p.score), core.ColorBrightCyan)

	switch {
	case p.over && p.won:
		dst.DrawTextCentered(h/2-1, "C L E A R E D")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("score %d - enter for menu", p.score))
	case p.over:
		dst.DrawTextCentered(h/2-1, "G A M E  O V E R")
		dst.DrawTextCentered(h/2+1, "enter for menu")
	case p.paused:
		dst.DrawTextCentered(h/2, "P A U S E D")
	}
}

// Hero returns the player actor, nil outside the scene's active window.
func (p *Play) Hero() *actor.Actor {
	return p.hero
}

// Hostiles returns the live hostile collection.
func (p *Play) Hostiles() []*actor.Actor {
	return p.hostiles
}

// Score returns the current score.
func (p *Play) Score() int {
	return p.score
}

// Over reports whether the round has ended.
func (p *Play) Over() bool {
	return p.over
}

// Won reports whether the round ended with every hostile destroyed.
func (p *Play) Won() bool {
	return p.won
}

// Exit releases the actor collection and every subscription the scene or its
// actors registered, so nothing dangles into the next scene.
func (p *Play) Exit() {
	p.hero.Release()
	for i, hostile := range p.hostiles {
		hostile.Release()
		p.hostiles[i] = nil
	}
	p.hostiles = p.hostiles[:0]
	p.hero = nil
	p.scope.Close()
	p.ctx.Input.ReleaseAll()
}
