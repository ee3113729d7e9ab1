package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/shapefall/shapefall/internal/core"
	"github.com/shapefall/shapefall/internal/game"
)

// Model is the Bubble Tea model driving a game session. It maps raw key and
// mouse events into one InputFrame per tick; game logic never sees terminal
// events.
type Model struct {
	game   *game.Manager
	screen *core.Screen
	config core.RuntimeConfig
	logger *log.Logger

	inputFrame core.InputFrame
	status     game.Status
	quitting   bool

	// Name entry overlay for a qualifying final score. The text input owns
	// editing; its value is drawn into the screen buffer like everything
	// else.
	nameInput      textinput.Model
	enteringName   bool
	entrySubmitted bool
}

// NewModel creates a model for the given session. defaultName pre-fills the
// leaderboard name prompt (the SSH user, empty locally).
func NewModel(g *game.Manager, cfg core.RuntimeConfig, defaultName string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "anonymous"
	ti.CharLimit = 12
	ti.Width = 14
	ti.SetValue(defaultName)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		nameInput:  ti,
	}
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
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameEntryKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// Map key to action
	switch msg.String() {
	case "enter", " ":
		m.inputFrame.Set(core.ActionConfirm)
	case "p":
		m.inputFrame.Set(core.ActionPause)
	case "esc":
		m.inputFrame.Set(core.ActionBack)
	case "r":
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleNameEntryKey routes keys to the leaderboard name prompt.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		name := m.nameInput.Value()
		if name == "" {
			name = "anonymous"
		}
		date := time.Now().Format("2006-01-02")
		if err := m.game.Scores().SubmitEntry(name, date); err != nil {
			m.logger.Warn("leaderboard entry not persisted", "error", err)
		}
		m.enteringName = false
		m.entrySubmitted = true
		return m, nil

	case "esc":
		// Skip the leaderboard entry.
		m.enteringName = false
		m.entrySubmitted = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleMouse maps pointer events into the input frame. Only the press edge
// of the primary button registers a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m, nil
	}

	pos := core.Vec2{X: float64(msg.X), Y: float64(msg.Y)}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(pos)
	} else {
		m.inputFrame.MovePointer(pos)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and checks for the name entry overlay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.enteringName {
		m.game.HandleInput(m.inputFrame)
		m.game.Update(m.config.Delta())
	}
	m.inputFrame.Clear()

	wasOver := m.status.GameOver
	m.status = m.game.Status()

	// A qualifying final score opens the name prompt, once per game over.
	if m.status.GameOver && !wasOver {
		m.entrySubmitted = false
		if m.status.Qualifies {
			m.enteringName = true
			m.nameInput.Focus()
		}
	}
	if !m.status.GameOver {
		m.entrySubmitted = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".shapefall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("shapefall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.enteringName {
		m.renderNameEntry()
	}

	return RenderScreen(m.screen)
}

// renderNameEntry draws the leaderboard name prompt over the game screen.
func (m *Model) renderNameEntry() {
	mid := m.screen.Height() / 2

	m.screen.DrawTextCenteredColored(mid-2, "╔══════════════════════════╗", core.ColorGold)
	m.screen.DrawTextCenteredColored(mid-1, "║   you made the board!    ║", core.ColorGold)
	m.screen.DrawTextCenteredColored(mid, "║                          ║", core.ColorGold)
	m.screen.DrawTextCenteredColored(mid+1, "╚══════════════════════════╝", core.ColorGold)

	name := m.nameInput.Value()
	if name == "" {
		name = m.nameInput.Placeholder
	}
	m.screen.DrawTextCenteredColored(mid, fmt.Sprintf("name: %s_", name), core.ColorWhite)
	m.screen.DrawTextCenteredColored(mid+3, "enter save   esc skip", core.ColorGray)
}

// Run starts the Bubble Tea program for a local session.
func Run(g *game.Manager, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, cfg, "", logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are the primary input
	)

	_, err := p.Run()
	return err
}
