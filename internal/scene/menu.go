package scene

import (
	"fmt"

	"github.com/vovakirdan/glyphrun/internal/bus"
	"github.com/vovakirdan/glyphrun/internal/core"
	"github.com/vovakirdan/glyphrun/internal/input"
)

// menu entries, in display order.
const (
	menuItemPlay = iota
	menuItemQuit
	menuItemCount
)

// Menu is the title scene: navigable through logical action events only, so
// it works identically from keyboard, touch regions, or anything else the
// bindings table maps.
type Menu struct {
	ctx     *Context
	machine *Machine

	scope  *bus.Scope
	cursor int
}

// NewMenu creates the menu scene.
func NewMenu(ctx *Context, machine *Machine) *Menu {
	return &Menu{ctx: ctx, machine: machine}
}

func (m *Menu) Name() string { return NameMenu }

func (m *Menu) Enter() {
	m.cursor = 0
	m.scope = m.ctx.Bus.NewScope()
	wireTriggers(m.ctx, m.scope)

	m.scope.Subscribe(input.PressedEvent(input.ActionUp), func(bus.Event) {
		m.move(-1)
	})
	m.scope.Subscribe(input.PressedEvent(input.ActionDown), func(bus.Event) {
		m.move(1)
	})
	m.scope.Subscribe(input.PressedEvent(input.ActionConfirm), func(bus.Event) {
		m.confirm()
	})
	m.scope.Subscribe(input.PressedEvent(input.ActionBack), func(bus.Event) {
		m.ctx.Bus.Emit(EventQuitRequested, nil)
	})
}

func (m *Menu) move(delta int) {
	m.cursor = (m.cursor + delta + menuItemCount) % menuItemCount
	m.ctx.Bus.Emit(EventMenuMoved, m.cursor)
}

func (m *Menu) confirm() {
	switch m.cursor {
	case menuItemPlay:
		m.machine.Go(NamePlay)
	case menuItemQuit:
		m.ctx.Bus.Emit(EventQuitRequested, nil)
	}
}

// Update is empty; the menu is entirely event-driven.
func (m *Menu) Update(dt float64) {}

func (m *Menu) Draw(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.NewRect(0, 0, w, h))

	top := h/2 - 5
	dst.DrawTextCentered(top, "g l y p h r u n")
	dst.DrawTextCentered(top+1, fmt.Sprintf("%d entity types, %d cached assets",
		len(m.ctx.Types), m.ctx.Cache.Len()))

	labels := [menuItemCount]string{"Play", "Quit"}
	for i, label := range labels {
		line := "  " + label + "  "
		if i == m.cursor {
			line = "> " + label + " <"
			dst.DrawTextColored((w-len(line))/2, top+3+i*2, line, core.ColorBrightYellow)
			continue
		}
		dst.DrawTextCentered(top+3+i*2, line)
	}

	dst.DrawTextCentered(h-2, "move: up/down   select: enter   quit: esc")
}

func (m *Menu) Exit() {
	m.scope.Close()
	m.ctx.Input.ReleaseAll()
}
