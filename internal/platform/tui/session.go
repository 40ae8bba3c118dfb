package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/core"
	"github.com/vovakirdan/tui-millipede/internal/registry"
	"github.com/vovakirdan/tui-millipede/internal/storage"
)

// presetter is implemented by games with a per-instance difficulty.
type presetter interface {
	SetPreset(name string)
}

// SessionOptions selects what a session plays.
type SessionOptions struct {
	GameID string
	Preset config.DifficultyPreset
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with the
// scoreboard reachable from the menu. Local play and SSH sessions share it.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	opts       SessionOptions
	renderer   *lipgloss.Renderer
	painter    *Painter
	view       sessionView
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model. A nil renderer uses the local
// terminal.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, r *lipgloss.Renderer, opts SessionOptions) SessionModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if opts.GameID == "" {
		opts.GameID = "millipede"
	}
	m := SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		opts:     opts,
		renderer: r,
		painter:  NewPainter(r),
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.store, m.opts.GameID, m.opts.Preset, m.config.ScreenW, m.config.ScreenH, m.renderer)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}
	m.opts.Preset = m.menu.Preset()

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.view = viewScores
		m.scoreboard = NewScoreboardModel(m.store, m.opts.GameID, m.title(), m.config.ScreenW, m.config.ScreenH, m.renderer)
		return m, m.scoreboard.Init()

	case m.menu.Selected():
		game, err := registry.Create(m.opts.GameID)
		if err != nil {
			// Shouldn't happen since the command validates the id
			m.menu = m.newMenu()
			return m, nil
		}
		if p, ok := game.(presetter); ok {
			p.SetPreset(string(m.opts.Preset))
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		gameModel := NewGameModel(game, m.store, cfg, m.username, m.painter)
		m.gameModel = &gameModel
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.view = viewMenu
		m.gameModel = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) title() string {
	if t, ok := registry.Title(m.opts.GameID); ok {
		return t
	}
	return m.opts.GameID
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case viewScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
