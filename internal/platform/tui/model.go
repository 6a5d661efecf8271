package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/glyphrun/internal/content"
	"github.com/vovakirdan/glyphrun/internal/core"
	"github.com/vovakirdan/glyphrun/internal/input"
)

// keyHoldWindow is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases, so a key's
// up edge is synthesized when its window expires without a repeat.
const keyHoldWindow = 250 * time.Millisecond

// Model is the Bubble Tea model driving one runtime session.
type Model struct {
	sess   *Session
	screen *core.Screen
	timer  *core.Timer
	keys   KeyMap
	fps    int

	// held maps physical key signals to their hold-window expiry.
	held map[string]time.Time

	quitting bool
}

// NewModel creates a model around an assembled session.
func NewModel(sess *Session, fps int) Model {
	return Model{
		sess:   sess,
		screen: core.NewScreen(sess.Ctx.Width, sess.Ctx.Height),
		timer:  core.NewTimer(core.DefaultMaxStep),
		keys:   DefaultKeyMap(),
		fps:    fps,
		held:   make(map[string]time.Time),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.sess.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey feeds a key press into the input system as a physical signal and
// refreshes its hold window.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	signal := input.KeySignal(msg.String())
	m.sess.Ctx.Input.SignalDown(signal)
	m.held[signal] = time.Now().Add(keyHoldWindow)
	return m, nil
}

// handleMouse maps presses onto touch regions. Terminals do report mouse
// button releases, so the touch path gets real up edges.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	in := m.sess.Ctx.Input
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			region := touchRegion(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
			in.SignalDown(input.TouchSignal(region))
		}
	case tea.MouseActionRelease:
		// The release event does not say which region the press started in,
		// so lift them all.
		for _, region := range touchRegions {
			in.SignalUp(input.TouchSignal(region))
		}
	}
	return m, nil
}

// handleTick expires stale key holds, advances the scene machine by the
// clamped frame delta, and schedules the next frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	for signal, expiry := range m.held {
		if now.After(expiry) {
			m.sess.Ctx.Input.SignalUp(signal)
			delete(m.held, signal)
		}
	}

	m.sess.Machine.Update(m.timer.Delta(now))

	if m.sess.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// saveScreenshot writes the current frame to ~/.glyphrun/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.sess.Machine.Draw(m.screen)

	name := "boot"
	if current := m.sess.Machine.Current(); current != nil {
		name = current.Name()
	}

	dir := filepath.Join(os.Getenv("HOME"), ".glyphrun", "screenshots")
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the active scene through the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.sess.Machine.Draw(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a local session on the controlling terminal and blocks until it
// exits.
func Run(logger *log.Logger, cfg *content.Config, fps int, audioEnabled bool) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	sess := NewSession(logger, cfg, audioEnabled, width, height)
	p := tea.NewProgram(
		NewModel(sess, fps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
