// Package tui implements the interactive dashboard: operand inputs, live
// progress from the orchestration layer, and a scrolling run log.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/karatcalc/internal/bag"
	"github.com/agbru/karatcalc/internal/config"
	"github.com/agbru/karatcalc/internal/digit"
	apperrors "github.com/agbru/karatcalc/internal/errors"
	"github.com/agbru/karatcalc/internal/format"
	"github.com/agbru/karatcalc/internal/orchestration"
	"github.com/agbru/karatcalc/internal/sysmon"
)

// Input field indices.
const (
	inputLhs = iota
	inputRhs
	inputBase
	numInputs
)

// maxLogLines bounds the scrollback kept in memory.
const maxLogLines = 200

// examplePair is a worked example served by the random-example key.
type examplePair struct {
	lhs  string
	rhs  string
	base uint64
}

// defaultExamples seeds the random-example bag.
func defaultExamples() *bag.RandomBag[examplePair] {
	b := bag.New[examplePair]()
	b.Insert(examplePair{lhs: "1,3,3,7", rhs: "1,0,0,0", base: 10})
	b.Insert(examplePair{lhs: "9,9,9", rhs: "1", base: 10})
	b.Insert(examplePair{lhs: "7", rhs: "8", base: 10})
	b.Insert(examplePair{lhs: "1,0,1,1", rhs: "1,1,0", base: 2})
	b.Insert(examplePair{lhs: "15,15,15", rhs: "15", base: 16})
	b.Insert(examplePair{lhs: "255,128,1", rhs: "2,0", base: 256})
	return b
}

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx         context.Context
	cancel      context.CancelFunc
	multipliers []digit.Multiplier
	generation  uint64
	running     bool
	done        bool
	exitCode    int
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header HeaderModel
	inputs []textinput.Model
	focus  int
	spin   spinner.Model
	logs   []string

	keymap KeyMap

	ExecutionState

	parentCtx    context.Context
	config       config.AppConfig
	ref          *programRef
	examples     *bag.RandomBag[examplePair]
	progressLine string
	width        int
	height       int
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, multipliers []digit.Multiplier, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	inputs := make([]textinput.Model, numInputs)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 0
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[inputLhs].Placeholder = "1,3,3,7"
	inputs[inputRhs].Placeholder = "1,0,0,0"
	inputs[inputBase].Placeholder = "10"
	inputs[inputBase].Width = 12

	if len(cfg.Lhs) > 0 {
		inputs[inputLhs].SetValue(digit.FormatVector(cfg.Lhs))
	}
	if len(cfg.Rhs) > 0 {
		inputs[inputRhs].SetValue(digit.FormatVector(cfg.Rhs))
	}
	if cfg.Base > 0 {
		inputs[inputBase].SetValue(strconv.FormatUint(cfg.Base, 10))
	}
	inputs[inputLhs].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return Model{
		header: NewHeaderModel(version),
		inputs: inputs,
		spin:   sp,
		keymap: DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:         ctx,
			cancel:      cancel,
			multipliers: multipliers,
			exitCode:    apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
		examples:  defaultExamples(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ProgressMsg:
		m.progressLine = fmt.Sprintf("%s ETA %s",
			format.FormatProgressBarWithETA(msg.AverageProgress, msg.ETA, 30),
			format.FormatETA(msg.ETA))
		return m, nil

	case ProgressDoneMsg:
		m.progressLine = ""
		return m, nil

	case ComparisonResultsMsg:
		for _, res := range msg.Results {
			m.addResultLine(res)
		}
		return m, nil

	case FinalResultMsg:
		m.addLog(logSuccessStyle.Render(fmt.Sprintf("product: %s (%d digits, base %d)",
			truncateForLog(msg.Result.Product), len(msg.Result.Product), msg.Opts.Base)))
		return m, nil

	case ErrorMsg:
		m.addLog(logErrorStyle.Render(fmt.Sprintf("error: %v (after %s)", msg.Err, format.FormatExecutionDuration(msg.Duration))))
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.header.SetSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case MultiplicationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous run
		}
		m.running = false
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous run
		}
		m.done = true
		m.header.SetDone()
		return m, tea.Quit
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		m.done = true
		return *m, tea.Quit

	case key.Matches(msg, m.keymap.Run):
		if m.running {
			return *m, nil
		}
		return m.startRun()

	case key.Matches(msg, m.keymap.Random):
		if ex, ok := m.examples.RemoveRandom(); ok {
			m.inputs[inputLhs].SetValue(ex.lhs)
			m.inputs[inputRhs].SetValue(ex.rhs)
			m.inputs[inputBase].SetValue(strconv.FormatUint(ex.base, 10))
			// Put the example back so the bag never runs dry.
			m.examples.Insert(ex)
		}
		return *m, nil

	case key.Matches(msg, m.keymap.Reset):
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel
		m.logs = nil
		m.progressLine = ""
		m.running = false
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.header.Reset()
		return *m, tea.Batch(tickCmd(), watchContextCmd(m.ctx, m.generation))

	case key.Matches(msg, m.keymap.Next):
		m.setFocus((m.focus + 1) % numInputs)
		return *m, nil

	case key.Matches(msg, m.keymap.Prev):
		m.setFocus((m.focus + numInputs - 1) % numInputs)
		return *m, nil
	}

	cmd := m.updateInputs(msg)
	return *m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// startRun validates the inputs and launches the orchestration.
func (m *Model) startRun() (tea.Model, tea.Cmd) {
	lhs, err := digit.ParseVector(m.inputs[inputLhs].Value())
	if err != nil {
		m.addLog(logErrorStyle.Render(fmt.Sprintf("lhs: %v", err)))
		return *m, nil
	}
	rhs, err := digit.ParseVector(m.inputs[inputRhs].Value())
	if err != nil {
		m.addLog(logErrorStyle.Render(fmt.Sprintf("rhs: %v", err)))
		return *m, nil
	}
	base, err := strconv.ParseUint(strings.TrimSpace(m.inputs[inputBase].Value()), 10, 64)
	if err != nil {
		m.addLog(logErrorStyle.Render(fmt.Sprintf("base: %v", err)))
		return *m, nil
	}

	m.running = true
	m.header.Reset()
	m.addLog(logTimeStyle.Render(time.Now().Format("15:04:05")) + " " +
		logProgressStyle.Render(fmt.Sprintf("multiplying %d x %d digits in base %d", len(lhs), len(rhs), base)))

	return *m, tea.Batch(
		m.spin.Tick,
		startMultiplicationCmd(m.ref, m.ctx, m.multipliers, lhs, rhs, base, m.config, m.generation),
	)
}

func (m *Model) addResultLine(res orchestration.MultiplicationResult) {
	duration := format.FormatExecutionDuration(res.Duration)
	if res.Err != nil {
		m.addLog(logAlgoStyle.Render(res.Name) + " " + logErrorStyle.Render(fmt.Sprintf("failed: %v", res.Err)))
		return
	}
	m.addLog(logAlgoStyle.Render(res.Name) + " " + logSuccessStyle.Render("ok") + " " + logTimeStyle.Render(duration))
}

func (m *Model) addLog(line string) {
	m.logs = append(m.logs, line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()

	var inputRows []string
	labels := []string{"lhs ", "rhs ", "base"}
	for i, ti := range m.inputs {
		inputRows = append(inputRows, inputLabelStyle.Render(labels[i])+" "+ti.View())
	}
	inputPanel := panelStyle.Width(m.width - 2).Render(strings.Join(inputRows, "\n"))

	var statusLine string
	switch {
	case m.running:
		statusLine = m.spin.View() + " " + statusRunningStyle.Render("running") + " " + m.progressLine
	case m.exitCode != apperrors.ExitSuccess:
		statusLine = statusErrorStyle.Render(fmt.Sprintf("failed (exit %d)", m.exitCode))
	case len(m.logs) > 0:
		statusLine = statusDoneStyle.Render("done")
	default:
		statusLine = inputLabelStyle.Render("enter operands and press enter")
	}

	logPanel := panelStyle.Width(m.width - 2).Render(strings.Join(m.visibleLogs(), "\n"))

	footer := footerKeyStyle.Render("enter") + footerDescStyle.Render(" multiply  ") +
		footerKeyStyle.Render("ctrl+r") + footerDescStyle.Render(" random  ") +
		footerKeyStyle.Render("ctrl+x") + footerDescStyle.Render(" reset  ") +
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, inputPanel, statusLine, logPanel, footer)
}

// visibleLogs returns the tail of the log that fits the current height.
func (m Model) visibleLogs() []string {
	if len(m.logs) == 0 {
		return []string{inputLabelStyle.Render("no runs yet")}
	}
	avail := m.height - numInputs - 8
	if avail < 1 {
		avail = 1
	}
	if len(m.logs) <= avail {
		return m.logs
	}
	return m.logs[len(m.logs)-avail:]
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, multipliers []digit.Multiplier, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, multipliers, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startMultiplicationCmd returns a tea.Cmd that launches the orchestration.
func startMultiplicationCmd(ref *programRef, ctx context.Context, multipliers []digit.Multiplier, lhs, rhs digit.Vector, base uint64, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		opts := digit.Options{ParallelThreshold: cfg.Threshold}
		results := orchestration.ExecuteMultiplications(ctx, multipliers, lhs, rhs, base, opts, progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			Base:      base,
			Verbose:   cfg.Verbose,
			ShowValue: cfg.ShowValue,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)

		return MultiplicationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}

// truncateForLog shortens a product for the one-line run log.
func truncateForLog(v digit.Vector) string {
	const edge = 8
	if len(v) <= 2*edge {
		return digit.FormatVector(v)
	}
	return digit.FormatVector(v[:edge]) + ",...," + digit.FormatVector(v[len(v)-edge:])
}
