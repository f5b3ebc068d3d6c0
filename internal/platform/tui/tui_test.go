package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	_ "github.com/vovakirdan/vibe-arcade/internal/games/bricks"
	"github.com/vovakirdan/vibe-arcade/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var quietLogger = log.New(io.Discard)

// stubGame ends with StatusGameOver after endAt ticks and remembers its input.
type stubGame struct {
	endAt  int
	ticks  int
	status core.Status
	paused bool
	inputs []core.InputFrame
}

func (g *stubGame) ID() string                    { return "stub" }
func (g *stubGame) Title() string                 { return "Stub" }
func (g *stubGame) Init(core.RuntimeConfig) error { return nil }
func (g *stubGame) Reset()                        { g.ticks, g.status = 0, core.StatusInRoom }
func (g *stubGame) Render(dst *core.Screen)       { dst.DrawText(0, 0, "stub") }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	switch {
	case in.Has(core.ActionRestart) && g.status.Terminal():
		g.Reset()
	case g.status.Terminal():
	case in.Has(core.ActionPause):
		g.paused = !g.paused
	case !g.paused:
		g.ticks++
		if g.ticks >= g.endAt {
			g.status = core.StatusGameOver
		}
	}
	return core.StepResult{State: g.State(), Events: []core.Sound{core.SoundStep}}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Status:   g.status,
		Progress: g.ticks,
		GameOver: g.status.Terminal(),
		Paused:   g.paused,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newStubModel(g *stubGame, store *storage.Store) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 9}
	return NewGameModel(g, store, cfg, GameOptions{Difficulty: "hard", Logger: quietLogger})
}

func send(m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(GameModel)
	}
	return m, cmd
}

func tick() tea.Msg { return TickMsg(time.Now()) }

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary},
		{runes("x"), core.ActionSecondary},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionConfirm},
		{runes("v"), core.ActionToggleMode},
		{runes("r"), core.ActionRestart},
		{runes("p"), core.ActionPause},
		{runes("b"), core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runes("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := keys.MenuAction(tt.msg); got != tt.want {
			t.Errorf("MenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameModelCollectsInputPerTick(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := newStubModel(g, nil)

	m, cmd := send(m, runes("x"), runes("d"), tick())
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if len(g.inputs) != 1 {
		t.Fatalf("expected one step, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionSecondary) || !g.inputs[0].Has(core.ActionRight) {
		t.Errorf("first tick should carry both keys, got %v", g.inputs[0].Actions)
	}

	send(m, tick())
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("input should be cleared after a tick, got %v", g.inputs[1].Actions)
	}
}

func TestGameModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{endAt: 2}
	m := newStubModel(g, store)

	m, _ = send(m, tick(), tick(), tick(), tick())
	if !m.State().GameOver {
		t.Fatal("stub should be over")
	}

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(runs))
	}
	r := runs[0]
	if r.Outcome != "game-over" || r.Progress != 2 || r.Ticks != 2 || r.Seed != 9 || r.Difficulty != "hard" {
		t.Errorf("unexpected run %+v", r)
	}
	if len(m.Runs()) != 1 || m.Runs()[0] != r.ID {
		t.Errorf("model should remember the run id, got %v", m.Runs())
	}

	// Restart starts a new run that is recorded again
	m, _ = send(m, runes("r"), tick(), tick(), tick())
	runs, _ = store.RecentRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("expected a second run after restart, got %d", len(runs))
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := newStubModel(g, nil)

	m, _ = send(m, tick(), runes("b"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while the game runs")
	}

	m, _ = send(m, runes("p"), tick(), runes("b"))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestGameModelQuitRecordsAbortedRun(t *testing.T) {
	store := openStore(t)
	g := &stubGame{endAt: 100}
	m := newStubModel(g, store)

	m, cmd := send(m, tick(), tick(), tick(), runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeAborted || runs[0].Ticks != 3 {
		t.Errorf("expected one aborted run of 3 ticks, got %+v", runs)
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := newStubModel(g, nil)

	m, _ = send(m, tick(), tea.WindowSizeMsg{Width: 30, Height: 8})
	if g.ticks != 1 {
		t.Errorf("resize should not reset the game, ticks=%d", g.ticks)
	}
	if !strings.HasPrefix(m.View(), "stub") {
		t.Errorf("unexpected view %q", m.View())
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 8 || lipgloss.Width(lines[0]) != 30 {
		t.Errorf("view should match the new size, got %d lines", len(lines))
	}
}

func TestRenderScreenWideGlyphs(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "界a")
	s.SetColored(3, 1, '#', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 4 {
			t.Errorf("line %d is %d columns wide, want 4", i, w)
		}
	}
	if !strings.Contains(lines[0], "界a") || !strings.Contains(lines[1], "#") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	var m tea.Model = NewSessionModel(nil, cfg, quietLogger)

	update := func(msg tea.Msg) {
		t.Helper()
		m, _ = m.Update(msg)
	}

	if !strings.Contains(m.View(), "Select a game") {
		t.Fatal("session should start in the menu")
	}

	// Difficulty cycles, then the first game starts
	update(tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "Difficulty: < hard >") {
		t.Errorf("menu should show the chosen difficulty:\n%s", m.View())
	}
	update(tea.KeyMsg{Type: tea.KeyEnter})
	update(tick())
	if !strings.Contains(m.View(), "Bricks:") {
		t.Fatalf("bricks should be running:\n%s", m.View())
	}

	update(runes("p"))
	update(tick())
	update(runes("b"))
	if !strings.Contains(m.View(), "Select a game") {
		t.Fatal("back while paused should return to the menu")
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "RUN HISTORY") {
		t.Fatalf("tab should open the history:\n%s", m.View())
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(m.View(), "Select a game") {
		t.Fatal("esc should leave the history")
	}

	var cmd tea.Cmd
	m, cmd = m.Update(runes("q"))
	if cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}
