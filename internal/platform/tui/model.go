package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tui-platformer/internal/core"
	"tui-platformer/internal/game"
	"tui-platformer/internal/storage"
)

var promptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// scorePrompt is a completed level awaiting a player name before its
// score is written to the store.
type scorePrompt struct {
	level string
	score int
}

// Model is the Bubble Tea model driving a platformer session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	nameInput textinput.Model
	prompts   []scorePrompt

	exitMessage string
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, defaultName string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.CharLimit = 24
	ti.Width = 24

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		nameInput:  ti,
	}
}

// ExitMessage returns the fatal message the game ended with, if any.
func (m Model) ExitMessage() string {
	return m.exitMessage
}

// prompting reports whether a name prompt is on screen.
func (m Model) prompting() bool {
	return len(m.prompts) > 0
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. While a name prompt is open the
// keys feed the text input instead of the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting() {
		return m.handlePromptKey(msg)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handlePromptKey routes keys to the active name prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.savePromptedScore()
		return m, nil
	case "esc":
		// Skip recording this one
		m.popPrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// savePromptedScore writes the front prompt's score under the entered
// name, falling back to the placeholder when the field is empty.
func (m *Model) savePromptedScore() {
	p := m.prompts[0]
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = m.nameInput.Placeholder
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(p.level, name, p.score)
	}
	m.popPrompt()
}

func (m *Model) popPrompt() {
	m.prompts = m.prompts[1:]
	if m.prompting() {
		m.nameInput.SetValue("")
	} else {
		m.nameInput.Blur()
	}
}

// handleTick processes simulation ticks. The game is frozen while a
// name prompt is open.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.prompting() {
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventLevelComplete:
			m.prompts = append(m.prompts, scorePrompt{level: ev.Level, score: ev.Score})
			if len(m.prompts) == 1 {
				m.nameInput.SetValue("")
				m.nameInput.Focus()
			}
		case core.EventGameWon:
			// The win screen comes from the game renderer
		case core.EventExitRequested:
			m.exitMessage = ev.Message
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.prompting() {
		p := m.prompts[0]
		prompt := promptStyle.Render(fmt.Sprintf(
			"Level %s complete! Score: %d\nEnter your name: %s",
			p.level, p.score, m.nameInput.View(),
		))
		view += "\n" + prompt
	}

	return view
}

// Run starts the Bubble Tea program for a local terminal session.
// It returns the fatal exit message, if the game ended with one.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, defaultName string) (string, error) {
	model := NewModel(g, store, cfg, defaultName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.ExitMessage(), nil
	}
	return "", nil
}
