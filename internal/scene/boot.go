package scene

import (
	"github.com/vovakirdan/glyphrun/internal/assets"
	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
)

// Boot runs the asset pipeline: it enumerates the style tables, generates
// every sprite and sound into the cache, builds the shared entity type table,
// and opens the audio device. The machine only leaves Boot once all of that
// has completed; a failure parks the runtime here with the error on screen
// rather than letting a partial cache leak into gameplay.
type Boot struct {
	ctx     *Context
	machine *Machine

	done bool
	err  error
}

// NewBoot creates the boot scene.
func NewBoot(ctx *Context, machine *Machine) *Boot {
	return &Boot{ctx: ctx, machine: machine}
}

func (b *Boot) Name() string { return NameBoot }

// Enter performs the whole boot pipeline synchronously. Generation is batched
// here precisely so its heavier work never competes with per-frame gameplay.
func (b *Boot) Enter() {
	if b.done {
		return // cache is process-lifetime; re-entering boot regenerates nothing
	}

	ctx := b.ctx
	ctx.Logger.Info("boot: generating assets",
		"sprites", len(ctx.Content.Sprites), "sounds", len(ctx.Content.Sounds))

	if err := ctx.Cache.Generate(ctx.Content, ctx.Logger); err != nil {
		b.err = err
		ctx.Logger.Error("boot failed", "error", err)
		return
	}

	ctx.Types = make(map[string]*content.EntityType, len(ctx.Content.Entities))
	for key, et := range ctx.Content.Entities {
		record := et
		ctx.Types[key] = &record
	}

	// Speaker setup must finish before boot declares itself done.
	player, err := assets.NewPlayer(ctx.AudioEnabled)
	if err != nil {
		// Audio is ambience, not content: fall back to silence instead of
		// refusing to run on machines without an output device.
		ctx.Logger.Warn("boot: audio unavailable, continuing silent", "error", err)
		player, _ = assets.NewPlayer(false)
	}
	ctx.Audio = player

	b.done = true
}

// Update transitions to the menu once the pipeline has completed. On failure
// the scene stays parked so the error remains visible.
func (b *Boot) Update(dt float64) {
	if b.done && b.err == nil {
		b.machine.Go(NameMenu)
	}
}

func (b *Boot) Draw(dst *core.Screen) {
	mid := dst.Height() / 2
	if b.err != nil {
		dst.DrawTextCentered(mid-1, "boot failed")
		dst.DrawTextColored((dst.Width()-len(b.err.Error()))/2, mid+1, b.err.Error(), core.ColorBrightRed)
		return
	}
	dst.DrawTextCentered(mid, "generating assets...")
}

// Exit has nothing to release: boot owns no subscriptions or actors, and the
// cache it populated is process-lifetime by design.
func (b *Boot) Exit() {}

// Err exposes the boot failure, if any.
func (b *Boot) Err() error {
	return b.err
}
