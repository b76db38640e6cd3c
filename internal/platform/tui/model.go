package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/games/pattern"
)

const hintText = "drag a block into the empty slots"

// Options configures a Model.
type Options struct {
	Config   config.PatternConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger        // nil discards logs
	Renderer *lipgloss.Renderer // nil uses the default renderer
}

// Model is the Bubble Tea model running one puzzle session.
type Model struct {
	cfg      config.PatternConfig
	runtime  core.RuntimeConfig
	loop     *pattern.Loop
	screen   *core.Screen
	canvas   *pattern.ScreenRenderer
	output   *ScreenRenderer
	queue    *core.EventQueue
	keys     KeyMap
	help     help.Model
	hint     lipgloss.Style
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model and generates the first level.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Timing.FPS
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := pattern.NewLayout(opts.Config.Layout, rt.ScreenW, rt.ScreenH)
	state := pattern.NewState(pattern.SettingsFromConfig(opts.Config), layout, rt.Seed)
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0))

	out := NewScreenRenderer(opts.Renderer)
	h := help.New()
	h.ShowAll = false

	m := Model{
		cfg:     opts.Config,
		runtime: rt,
		loop:    pattern.NewLoop(state),
		screen:  screen,
		canvas:  pattern.NewScreenRenderer(screen),
		output:  out,
		queue:   &core.EventQueue{},
		keys:    DefaultKeyMap(),
		help:    h,
		hint:    out.renderer.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex())),
		logger:  logger,
	}
	m.logLevel(state)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.MapKey(msg); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleResize keeps the current level and moves it to the new geometry.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width

	state := m.loop.State()
	state.Relayout(state.Layout().Resized(msg.Width, msg.Height))
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height, "fits", state.Layout().Fits())

	return m, nil
}

// handleTick runs one frame with the input queued since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.loop.Frame(now, m.queue.Drain(), m.canvas)

	state := m.loop.State()
	if res.Regenerated {
		m.logLevel(state)
	}
	for _, out := range res.Outcomes {
		m.logOutcome(out)
	}

	if res.Quit {
		m.quitting = true
		m.logger.Info("session ended", "level", state.Level(), "frames", m.loop.Frames())
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) logLevel(state *pattern.State) {
	p := state.Puzzle()
	m.logger.Info("new level", "level", state.Level(), "color_a", p.ColorA, "color_b", p.ColorB)
}

func (m Model) logOutcome(out pattern.Outcome) {
	switch out.Kind {
	case pattern.OutcomePlaced, pattern.OutcomeRejected, pattern.OutcomeCompleted:
		m.logger.Debug(out.Kind.String(), "slot", out.Slot, "color", out.Color)
	case pattern.OutcomeReturned:
		m.logger.Debug(out.Kind.String(), "color", out.Color)
	}
}

// State exposes the game state, mainly for tests.
func (m Model) State() *pattern.State {
	return m.loop.State()
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the last drawn frame plus the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.hint.Render(hintText) + "  " + m.help.View(m.keys)
	return m.output.Render(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
