package scene

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphrun/internal/actor"
	"github.com/vovakirdan/glyphrun/internal/assets"
	"github.com/vovakirdan/glyphrun/internal/bus"
	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
	"github.com/vovakirdan/glyphrun/internal/input"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	logger := log.New(io.Discard)
	cfg := content.Default()
	b := bus.New(logger)
	return &Context{
		Logger:  logger,
		Bus:     b,
		Input:   input.NewSystem(b, cfg.Bindings, logger),
		Cache:   assets.NewCache(),
		Content: cfg,
		Width:   80,
		Height:  24,
	}
}

func newTestMachine(t *testing.T) (*Context, *Machine) {
	t.Helper()
	ctx := newTestContext(t)
	m := NewMachine(ctx.Logger)
	m.Add(NewBoot(ctx, m))
	m.Add(NewMenu(ctx, m))
	m.Add(NewPlay(ctx, m))
	m.Go(NameBoot)
	return ctx, m
}

// press taps a physical key: down edge plus release.
func press(ctx *Context, key string) {
	ctx.Input.SignalDown(input.KeySignal(key))
	ctx.Input.SignalUp(input.KeySignal(key))
}

// advanceToMenu runs boot and the transition frame.
func advanceToMenu(t *testing.T, ctx *Context, m *Machine) {
	t.Helper()
	m.Update(0) // boot enters, pipeline runs
	m.Update(0) // deferred transition to menu
	if m.Current().Name() != NameMenu {
		t.Fatalf("current = %q, want %q", m.Current().Name(), NameMenu)
	}
}

// advanceToPlay drives boot, menu and the Play confirmation.
func advanceToPlay(t *testing.T, ctx *Context, m *Machine) *Play {
	t.Helper()
	advanceToMenu(t, ctx, m)
	press(ctx, "enter")
	m.Update(0)
	play, ok := m.Current().(*Play)
	if !ok {
		t.Fatalf("current = %q, want %q", m.Current().Name(), NamePlay)
	}
	return play
}

func TestBootGeneratesAssetsAndTransitions(t *testing.T) {
	ctx, m := newTestMachine(t)

	m.Update(0)
	if m.Current().Name() != NameBoot {
		t.Fatalf("current = %q, want %q", m.Current().Name(), NameBoot)
	}

	wantAssets := len(ctx.Content.Sprites) + len(ctx.Content.Sounds)
	if got := ctx.Cache.Len(); got != wantAssets {
		t.Fatalf("cache holds %d assets, want %d", got, wantAssets)
	}
	if !ctx.Cache.Sealed() {
		t.Fatal("cache should be sealed after boot")
	}
	if _, ok := ctx.Cache.Sprite("hero_fast"); !ok {
		t.Fatal("hero_fast sprite missing from cache")
	}
	if _, ok := ctx.Cache.Sound("jump"); !ok {
		t.Fatal("jump sound missing from cache")
	}

	hero := ctx.Types["hero_fast"]
	if hero == nil {
		t.Fatal("type table missing hero_fast")
	}
	if hero.Speed != 10 || hero.HP != 50 {
		t.Fatalf("hero_fast record = %+v, want speed 10 hp 50", hero)
	}
	if ctx.Audio == nil {
		t.Fatal("boot left audio player nil")
	}

	m.Update(0)
	if m.Current().Name() != NameMenu {
		t.Fatalf("current = %q, want %q after boot", m.Current().Name(), NameMenu)
	}
}

func TestBootFailureParksTheMachine(t *testing.T) {
	ctx, m := newTestMachine(t)
	style := ctx.Content.Sprites["hero_fast"]
	style.Shape = "hexagon"
	ctx.Content.Sprites["hero_fast"] = style

	m.Update(0)
	m.Update(0)

	boot, ok := m.Current().(*Boot)
	if !ok {
		t.Fatalf("current = %q, want parked boot", m.Current().Name())
	}
	if boot.Err() == nil {
		t.Fatal("boot should report the generation error")
	}
	if !strings.Contains(boot.Err().Error(), "hero_fast") {
		t.Fatalf("error %q should name the offending key", boot.Err())
	}

	screen := core.NewScreen(80, 24)
	m.Draw(screen)
	if !strings.Contains(screen.String(), "boot failed") {
		t.Fatal("parked boot should draw its failure")
	}
}

func TestMenuNavigationAndConfirm(t *testing.T) {
	ctx, m := newTestMachine(t)
	advanceToMenu(t, ctx, m)

	var moves []int
	ctx.Bus.Subscribe(EventMenuMoved, func(ev bus.Event) {
		moves = append(moves, ev.Payload.(int))
	})

	press(ctx, "s") // down
	press(ctx, "w") // up, back to Play
	if len(moves) != 2 || moves[0] != 1 || moves[1] != 0 {
		t.Fatalf("cursor trail = %v, want [1 0]", moves)
	}

	press(ctx, "enter")
	m.Update(0)
	if m.Current().Name() != NamePlay {
		t.Fatalf("current = %q, want %q", m.Current().Name(), NamePlay)
	}
}

func TestMenuQuitEmitsQuitRequested(t *testing.T) {
	ctx, m := newTestMachine(t)
	advanceToMenu(t, ctx, m)

	quits := 0
	ctx.Bus.Subscribe(EventQuitRequested, func(bus.Event) { quits++ })

	press(ctx, "esc")
	if quits != 1 {
		t.Fatalf("quit requested %d times, want 1", quits)
	}
}

func TestSceneTransitionsLeaveNoDanglingSubscriptions(t *testing.T) {
	ctx, m := newTestMachine(t)
	if got := ctx.Bus.Count(); got != 0 {
		t.Fatalf("bus starts with %d subscriptions, want 0", got)
	}

	advanceToMenu(t, ctx, m)
	menuCount := ctx.Bus.Count()

	press(ctx, "enter")
	m.Update(0)
	playCount := ctx.Bus.Count()

	// Cycle back and in again: stable per-scene counts mean every exit
	// revoked everything that scene and its actors registered.
	press(ctx, "esc")
	m.Update(0)
	if got := ctx.Bus.Count(); got != menuCount {
		t.Fatalf("menu subscriptions = %d after a play round trip, want %d", got, menuCount)
	}

	press(ctx, "enter")
	m.Update(0)
	if got := ctx.Bus.Count(); got != playCount {
		t.Fatalf("play subscriptions = %d on re-entry, want %d", got, playCount)
	}
}

func TestPlayJumpPressedFiresOnceAcrossHandlers(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	pressed := 0
	ctx.Bus.Subscribe(input.PressedEvent(input.ActionJump), func(bus.Event) {
		pressed++
	})

	// Two mapped signals held at once still make a single edge.
	ctx.Input.SignalDown("key:space")
	ctx.Input.SignalDown("key:j")
	if pressed != 1 {
		t.Fatalf("jump pressed fired %d times, want 1", pressed)
	}
	if !play.Hero().Invulnerable() {
		t.Fatal("hero should be dodging after the jump edge")
	}
	if play.Hero().TypeKey() != "hero_fast" {
		t.Fatalf("hero type = %q, want hero_fast", play.Hero().TypeKey())
	}
}

func TestPlayHeroMovesWithHeldDirection(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	startX := play.Hero().X
	ctx.Input.SignalDown("key:d")
	m.Update(0.5)

	want := startX + play.Hero().Type().Speed*0.5
	if play.Hero().X != want {
		t.Fatalf("hero x = %v, want %v", play.Hero().X, want)
	}
}

func TestPlayCullsDestroyedHostilesAndScores(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	before := len(play.Hostiles())
	victim := play.Hostiles()[0]
	victim.Damage(victim.Type().HP)
	if !victim.Destroyed() {
		t.Fatal("hostile should be destroyed")
	}

	// Removal is deferred to the next update pass.
	m.Update(0)
	if got := len(play.Hostiles()); got != before-1 {
		t.Fatalf("hostiles = %d after cull, want %d", got, before-1)
	}
	for _, h := range play.Hostiles() {
		if h == victim {
			t.Fatal("destroyed hostile still in the collection")
		}
	}
	if play.Score() != victim.Type().Points {
		t.Fatalf("score = %d, want %d", play.Score(), victim.Type().Points)
	}
}

func TestPlayWinWhenAllHostilesDestroyed(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	for _, h := range play.Hostiles() {
		h.Damage(h.Type().HP)
	}
	m.Update(0)

	if !play.Over() || !play.Won() {
		t.Fatalf("over=%v won=%v, want both true", play.Over(), play.Won())
	}
}

func TestPlayGameOverAndReturnToMenu(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	play.Hero().Damage(play.Hero().Type().HP)
	m.Update(0)
	if !play.Over() || play.Won() {
		t.Fatalf("over=%v won=%v, want over without win", play.Over(), play.Won())
	}

	press(ctx, "enter")
	m.Update(0)
	if m.Current().Name() != NameMenu {
		t.Fatalf("current = %q, want %q after game over confirm", m.Current().Name(), NameMenu)
	}
}

func TestPlayPauseFreezesUpdates(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	press(ctx, "p")
	startX := play.Hero().X
	ctx.Input.SignalDown("key:d")
	m.Update(0.5)
	if play.Hero().X != startX {
		t.Fatal("paused scene should not integrate motion")
	}
	ctx.Input.SignalUp("key:d")

	press(ctx, "p")
	m.Update(0)
	screen := core.NewScreen(ctx.Width, ctx.Height)
	m.Draw(screen)
	if strings.Contains(screen.String(), "P A U S E D") {
		t.Fatal("pause overlay should clear after unpausing")
	}
}

func TestPlayBackReturnsToMenu(t *testing.T) {
	ctx, m := newTestMachine(t)
	advanceToPlay(t, ctx, m)

	press(ctx, "esc")
	m.Update(0)
	if m.Current().Name() != NameMenu {
		t.Fatalf("current = %q, want %q", m.Current().Name(), NameMenu)
	}
}

func TestJumpHandlersRunInSubscriptionOrder(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	// The trigger wired from config and the hero's own handler share the
	// jump-pressed event; a late observer is invoked after both of them.
	seenDodge := false
	ctx.Bus.Subscribe(input.PressedEvent(input.ActionJump), func(bus.Event) {
		seenDodge = play.Hero().Invulnerable()
	})
	ctx.Input.SignalDown("key:space")
	if !seenDodge {
		t.Fatal("actor handler should run before later subscribers")
	}
}

func TestDamagedHeroEmitsActorEvent(t *testing.T) {
	ctx, m := newTestMachine(t)
	play := advanceToPlay(t, ctx, m)

	damaged := 0
	ctx.Bus.Subscribe(actor.EventDamaged, func(bus.Event) { damaged++ })

	play.Hero().Damage(1)
	if damaged != 1 {
		t.Fatalf("damaged event fired %d times, want 1", damaged)
	}
	if !play.Hero().Invulnerable() {
		t.Fatal("surviving a hit should grant the configured immunity window")
	}
}
