package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphrun/internal/assets"
	"github.com/vovakirdan/glyphrun/internal/bus"
	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/input"
	"github.com/vovakirdan/glyphrun/internal/scene"
)

// Session wires one runtime instance together: its own bus, input system,
// asset cache and scene machine. The local program owns one; the SSH server
// builds one per connection so sessions never share mutable state.
type Session struct {
	Ctx     *scene.Context
	Machine *scene.Machine

	quit bool
}

// NewSession assembles a runtime around the given content. The machine is
// pointed at the boot scene; nothing runs until the first Update.
func NewSession(logger *log.Logger, cfg *content.Config, audioEnabled bool, width, height int) *Session {
	b := bus.New(logger)
	ctx := &scene.Context{
		Logger:       logger,
		Bus:          b,
		Input:        input.NewSystem(b, cfg.Bindings, logger),
		Cache:        assets.NewCache(),
		Content:      cfg,
		AudioEnabled: audioEnabled,
		Width:        width,
		Height:       height,
	}

	m := scene.NewMachine(logger)
	m.Add(scene.NewBoot(ctx, m))
	m.Add(scene.NewMenu(ctx, m))
	m.Add(scene.NewPlay(ctx, m))
	m.Go(scene.NameBoot)

	s := &Session{Ctx: ctx, Machine: m}
	b.Subscribe(scene.EventQuitRequested, func(bus.Event) {
		s.quit = true
	})
	return s
}

// QuitRequested reports whether any scene asked the loop to stop.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Resize propagates a new terminal size to the scenes.
func (s *Session) Resize(width, height int) {
	s.Ctx.Width = width
	s.Ctx.Height = height
}
