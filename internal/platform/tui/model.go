package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/storage"
)

// GameOptions configure a GameModel.
type GameOptions struct {
	Difficulty string      // Recorded with each run
	Standalone bool        // Back quits the program instead of returning to a menu
	Logger     *log.Logger // Sound events are logged at debug level
}

// GameModel is the Bubble Tea model for one game. Keys pressed between two
// ticks are collected into one input frame.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	opts   GameOptions
	keys   KeyMap
	logger *log.Logger

	input core.InputFrame
	state core.GameState
	ticks int  // Ticks since the current run started
	saved bool // Run already recorded for the current terminal status
	runs  []string

	quitting   bool
	backToMenu bool
}

// NewGameModel wraps an initialised game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		logger: logger,
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games scale to the screen, so a resize never resets them
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.saveRun(true)
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Leaving is only allowed when the game is not running
		if m.state.GameOver || m.state.Paused {
			m.saveRun(true)
			m.backToMenu = true
			if m.opts.Standalone {
				return m, tea.Quit
			}
		}
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick advances the game by one tick with the collected input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	res := m.game.Step(m.input)
	m.input.Clear()
	m.state = res.State
	m.ticks++

	for _, ev := range res.Events {
		m.logger.Debug("sound", "game", m.game.ID(), "event", ev)
	}

	switch {
	case m.state.Status.Terminal():
		m.saveRun(false)
	case m.saved:
		// Restarted or moved on to the next level
		m.saved = false
		m.ticks = 0
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Leaving a run that never reached a
// terminal status records it as aborted when it made any progress.
func (m *GameModel) saveRun(leaving bool) {
	if m.saved || m.store == nil {
		return
	}

	outcome := m.state.Status.String()
	if !m.state.Status.Terminal() {
		if !leaving || m.ticks == 0 {
			return
		}
		outcome = storage.OutcomeAborted
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:     m.game.ID(),
		Outcome:    outcome,
		Progress:   m.state.Progress,
		Ticks:      m.ticks,
		Seed:       m.config.Seed,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.saved = true
	m.runs = append(m.runs, id)
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("no home directory for screenshots", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.state
}

// Runs returns the IDs of the runs recorded so far.
func (m GameModel) Runs() []string {
	return m.runs
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays an initialised game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.Standalone = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
