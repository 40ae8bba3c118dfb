package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/storage"
)

// presets is the order the difficulty entry cycles through.
var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuItem identifies a title menu entry.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	preset    int
	width     int
	height    int
	best      int
	gameID    string
	styles    menuStyles
	keyMapper *KeyMapper
	quitting  bool
	selected  bool
	scores    bool
}

type menuStyles struct {
	title  lipgloss.Style
	active lipgloss.Style
	dim    lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		active: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// NewMenuModel creates the title menu. The high score line is read from the
// store once; a nil store shows none.
func NewMenuModel(store *storage.Store, gameID string, preset config.DifficultyPreset, width, height int, r *lipgloss.Renderer) MenuModel {
	m := MenuModel{
		preset:    1,
		width:     width,
		height:    height,
		gameID:    gameID,
		styles:    newMenuStyles(r),
		keyMapper: NewKeyMapper(),
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < int(MenuQuit) {
			m.cursor++
		}
	case MenuActionLeft:
		if MenuItem(m.cursor) == MenuDifficulty {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}
	case MenuActionRight:
		if MenuItem(m.cursor) == MenuDifficulty {
			m.preset = (m.preset + 1) % len(presets)
		}
	case MenuActionScoreboard:
		m.scores = true
	case MenuActionSelect:
		switch MenuItem(m.cursor) {
		case MenuPlay:
			m.selected = true
		case MenuDifficulty:
			m.preset = (m.preset + 1) % len(presets)
		case MenuScores:
			m.scores = true
		case MenuQuit:
			m.quitting = true
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("M I L L I P E D E"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	labels := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		"High Scores",
		"Quit",
	}
	for i, label := range labels {
		line := "  " + label
		if i == m.cursor {
			line = m.styles.active.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.styles.dim.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Preset returns the difficulty currently picked.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presets[m.preset]
}

// Selected reports whether the player chose to start a game.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scores
}

// centerText centers text within given width, measuring printable cells so
// styled strings line up.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
