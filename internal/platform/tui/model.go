package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Game      config.FlappyConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // May be nil; scores are then not persisted
	Player    string
	Muted     bool
	Autopilot bool // Let the built-in controller fly

	// QuitOnBack ends the program on esc/b instead of only flagging BackToMenu.
	QuitOnBack bool
}

// scoreboardState is shared between the model and the game's event sink.
type scoreboardState struct {
	high     int
	final    int
	finished bool
}

// Model is the Bubble Tea model for a flappy session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	theme      Theme
	hud        HUD
	player     string
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	autopilot  *flappy.Autopilot
	board      *scoreboardState
	lastTick   time.Time
	quitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	board := &scoreboardState{}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(opts.Game.Speed); err == nil {
			board.high = high
		}
	}

	events := flappy.EventFuncs{
		OnScoreChanged: func(score int) {
			if score > board.high {
				board.high = score
			}
		},
		OnGameOver: func(finalScore int) {
			board.final = finalScore
			board.finished = true
		},
	}

	m := Model{
		game: flappy.New(opts.Game,
			flappy.WithRand(rand.New(rand.NewSource(cfg.Seed))),
			flappy.WithEvents(events),
		),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		config:     cfg,
		theme:      ThemeFromConfig(opts.Game.Theme),
		hud:        HUD{Speed: opts.Game.Speed, Muted: opts.Muted},
		player:     opts.Player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		board:      board,
		quitOnBack: opts.QuitOnBack,
	}
	if opts.Autopilot {
		ap := flappy.NewAutopilot()
		m.autopilot = &ap
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues game commands for the next tick. Quit and back act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	mode := m.game.Mode()
	switch m.keyMapper.MapKeyToFrame(msg, mode == flappy.StatePaused, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if mode != flappy.StateRunning {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// handleTick applies queued commands and advances the simulation by the real
// time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	if m.autopilot != nil && m.autopilot.Decide(m.game.Snapshot()) {
		m.inputFrame.Set(core.ActionTap)
	}

	m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()
	m.persistFinishedRun()

	if m.backToMenu {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// persistFinishedRun saves the final score once per run.
func (m Model) persistFinishedRun() {
	if !m.board.finished {
		return
	}
	m.board.finished = false
	if m.store != nil && m.board.final > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.player, m.game.Config().Speed, m.board.final)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	hud := m.hud
	hud.HighScore = m.board.high
	Draw(m.screen, m.game.Snapshot(), m.theme, hud)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Snapshot returns the game's current world state.
func (m Model) Snapshot() flappy.Snapshot {
	return m.game.Snapshot()
}

// HighScore returns the best score known to this session.
func (m Model) HighScore() int {
	return m.board.high
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to leave a paused or finished game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
