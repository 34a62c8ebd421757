package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/registry"
	"github.com/vovakirdan/raycast-arena/internal/scene"
)

// sceneProvider is implemented by simulations that expose their scene to
// the hit inspector.
type sceneProvider interface {
	Scene() *scene.Scene
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running one arena simulation.
// The bottom row of the terminal holds the help line; the simulation gets
// the rest.
type Model struct {
	sim        registry.Simulation
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	state      core.SimState
	inspector  *InspectorModel
	status     string
	embedded   bool // running inside SessionModel; back does not quit the program
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
// cfg holds the full terminal size.
func NewModel(sim registry.Simulation, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-1, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the simulation.
func (m Model) Init() tea.Cmd {
	m.sim.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inspector != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateInspector(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	k := m.keys.Keys()

	switch {
	case key.Matches(msg, k.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, k.Inspect):
		if p, ok := m.sim.(sceneProvider); ok && p.Scene() != nil {
			insp := NewInspectorModel(p.Scene(), m.config.ScreenW, m.config.ScreenH+1)
			m.inspector = &insp
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateInspector(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		next, _ := m.handleResize(wsm)
		m = next.(Model)
	}

	insp, cmd := m.inspector.Update(msg)
	switch {
	case insp.IsQuitting():
		m.quitting = true
	case insp.Closed():
		m.inspector = nil
	default:
		m.inspector = &insp
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The arena is fitted to the screen, so a resize rebuilds it
	m.sim.Reset(m.config)
	m.state = m.sim.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The scene is frozen while the inspector is open
	if m.inspector != nil {
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.sim.Reset(m.config)
		m.state = m.sim.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.sim.Step(m.inputFrame)
	m.state = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.sim.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".raycast", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sim.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inspector != nil {
		return m.inspector.View()
	}

	m.screen.Clear()
	m.sim.Render(m.screen)

	footer := m.status
	if footer == "" {
		const prefix = "click move emitter • "
		h := m.help
		h.Width = max(m.config.ScreenW-len(prefix), 0)
		footer = prefix + h.View(m.keys.Keys())
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the last simulation state seen by the model.
func (m Model) State() core.SimState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for sim and blocks until it exits.
// It reports whether the user asked to go back to the menu.
func Run(sim registry.Simulation, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(sim, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks reposition the emitter
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
