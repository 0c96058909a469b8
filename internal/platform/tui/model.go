package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snakelab/termsnake/internal/config"
	"github.com/snakelab/termsnake/internal/game"
	"github.com/snakelab/termsnake/internal/storage"
	"github.com/snakelab/termsnake/internal/theme"
)

// Options configures a game session.
type Options struct {
	Config  config.Config
	Store   *storage.Store // may be nil, persistence becomes best-effort no-ops
	Themes  *theme.Catalog
	Seed    int64 // 0 means time-based
	ScreenW int
	ScreenH int
}

// Model is the Bubble Tea model for a termsnake session.
type Model struct {
	state     *game.State
	screen    *Screen
	store     *storage.Store
	themes    *theme.Catalog
	styles    styleSet
	keys      *KeyMapper
	gridCfg   config.GridConfig
	highScore int
	runSaved  bool
	quitting  bool
}

// NewModel creates a session model on the start screen.
func NewModel(opts Options) Model {
	bounds := boardBounds(opts.Config.Grid, opts.ScreenW, opts.ScreenH)

	var state *game.State
	if opts.Seed != 0 {
		state = game.NewWithSeed(bounds, opts.Seed)
		state.SetBaseSpeedLevel(opts.Config.Speed.StartLevel)
		state.SetFoodDensity(opts.Config.Food)
	} else {
		state = game.NewWithOptionsAndFoodDensity(bounds, opts.Config.Speed.StartLevel, opts.Config.Food)
	}
	// Hold on the start screen until the player confirms.
	state.ApplyInput(game.PauseInput())

	themes := opts.Themes
	if themes == nil {
		themes = theme.LoadCatalog()
	}
	selectTheme(themes, opts.Store, opts.Config.Theme)

	var highScore int
	if opts.Store != nil {
		highScore, _ = opts.Store.HighScore()
	}

	return Model{
		state:     state,
		screen:    NewScreen(opts.ScreenW, opts.ScreenH),
		store:     opts.Store,
		themes:    themes,
		styles:    stylesFor(themes.Current()),
		keys:      NewKeyMapper(),
		gridCfg:   opts.Config.Grid,
		highScore: highScore,
	}
}

// selectTheme picks the persisted theme if one exists, else the configured
// one. Unknown ids keep the catalog default.
func selectTheme(themes *theme.Catalog, store *storage.Store, configured string) {
	if store != nil {
		if id, err := store.ThemeID(); err == nil && id != "" && themes.Select(id) {
			return
		}
	}
	if configured != "" {
		themes.Select(configured)
	}
}

// boardBounds derives the logical grid from config, falling back to the
// terminal size minus the HUD and border rows.
func boardBounds(grid config.GridConfig, screenW, screenH int) game.GridSize {
	w := grid.Width
	h := grid.Height
	if w <= 0 {
		w = screenW - 2
	}
	if h <= 0 {
		h = screenH - hudHeight - 2
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return game.GridSize{Width: w, Height: h}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.state.SpeedLevel())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, input := m.keys.MapKey(msg)

	switch action {
	case ActionSpeedUp:
		m.adjustBaseSpeed(1)
		return m, nil
	case ActionSpeedDown:
		m.adjustBaseSpeed(-1)
		return m, nil
	case ActionGame:
	default:
		return m, nil
	}

	switch input.Kind {
	case game.InputQuit:
		m.saveRunOnce()
		m.quitting = true
		return m, tea.Quit

	case game.InputConfirm:
		if m.state.IsStartScreen() {
			// Leave the start screen and play.
			m.state.ApplyInput(game.PauseInput())
		} else if m.state.Status() == game.StatusGameOver || m.state.Status() == game.StatusVictory {
			m.state = m.state.Restart()
			m.runSaved = false
		}
		return m, nil

	case game.InputCycleTheme:
		m.themes.CycleNext()
		m.styles = stylesFor(m.themes.Current())
		if m.store != nil {
			//nolint:errcheck // Best-effort persistence
			m.store.SaveThemeID(m.themes.CurrentID())
		}
		return m, nil

	default:
		m.state.ApplyInput(input)
		return m, nil
	}
}

// adjustBaseSpeed changes the starting speed from the start screen selector.
func (m *Model) adjustBaseSpeed(delta int) {
	if !m.state.IsStartScreen() {
		return
	}
	level := m.state.BaseSpeedLevel() + delta
	if level < game.MinStartSpeedLevel {
		level = game.MinStartSpeedLevel
	}
	if level > game.MaxStartSpeedLevel {
		level = game.MaxStartSpeedLevel
	}
	m.state.SetBaseSpeedLevel(level)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	if m.gridCfg.Width <= 0 || m.gridCfg.Height <= 0 {
		m.state.ResizeBounds(boardBounds(m.gridCfg, msg.Width, msg.Height))
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.Status() == game.StatusPlaying {
		m.state.RecordTickDuration(tickInterval(m.state.SpeedLevel()))
	}

	m.state.Tick()

	status := m.state.Status()
	if status == game.StatusGameOver || status == game.StatusVictory {
		m.saveRunOnce()
	}

	return m, tickCmd(m.state.SpeedLevel())
}

// saveRunOnce persists the finished run exactly once per session.
func (m *Model) saveRunOnce() {
	status := m.state.Status()
	if m.runSaved || m.store == nil {
		return
	}
	if status != game.StatusGameOver && status != game.StatusVictory {
		return
	}
	if m.state.Score() == 0 {
		return
	}

	outcome := "game_over"
	if status == game.StatusVictory {
		outcome = "victory"
	}

	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunRecord{
		Score:       m.state.Score(),
		SpeedLevel:  m.state.SpeedLevel(),
		SnakeLength: m.state.Snake().Len(),
		Outcome:     outcome,
		Duration:    m.state.ElapsedDuration(),
	})
	m.runSaved = true

	if m.state.Score() > m.highScore {
		m.highScore = m.state.Score()
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	drawHUD(m.screen, m.state, m.highScore)

	bounds := m.state.Bounds()
	offsetX := (m.screen.Width() - (bounds.Width + 2)) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	drawBoard(m.screen, m.state, offsetX, hudHeight)

	drawOverlays(m.screen, m.state, m.state.BaseSpeedLevel())

	return RenderScreen(m.screen, m.styles)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
