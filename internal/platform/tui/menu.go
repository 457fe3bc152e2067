package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// MenuChoice identifies a session menu entry.
type MenuChoice int

const (
	MenuChoicePlay MenuChoice = iota
	MenuChoiceScores
	MenuChoiceQuit
)

// menuItem is one selectable menu row.
type menuItem struct {
	choice MenuChoice
	title  string
}

// MenuModel is the Bubble Tea model for the session menu.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuChoice // Set when user selects an entry
	highScore int
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := []menuItem{
		{choice: MenuChoicePlay, title: "Play"},
		{choice: MenuChoiceScores, title: "High Scores"},
		{choice: MenuChoiceQuit, title: "Quit"},
	}

	highScore := 0
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			highScore = hs
		}
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		highScore: highScore,
	}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.items[m.cursor].choice
		if choice == MenuChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &choice

	case MenuActionScoreboard:
		choice := MenuChoiceScores
		m.selected = &choice
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
	b.WriteString(centerText("T E T R A", m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or nil if none selected yet.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
