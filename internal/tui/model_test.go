package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/karatcalc/internal/config"
	"github.com/agbru/karatcalc/internal/digit"
	apperrors "github.com/agbru/karatcalc/internal/errors"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	factory := digit.NewDefaultFactory()
	multipliers := factory.GetAll()
	cfg := config.AppConfig{
		Lhs:  digit.Vector{1, 3, 3, 7},
		Rhs:  digit.Vector{1, 0, 0, 0},
		Base: 10,
	}
	m := NewModel(context.Background(), multipliers, cfg, "test")
	t.Cleanup(m.cancel)
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t)

	if m.running {
		t.Error("new model should not be running")
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitSuccess, m.exitCode)
	}
	if got := m.inputs[inputLhs].Value(); got != "1,3,3,7" {
		t.Errorf("lhs input = %q, want %q", got, "1,3,3,7")
	}
	if got := m.inputs[inputRhs].Value(); got != "1,0,0,0" {
		t.Errorf("rhs input = %q, want %q", got, "1,0,0,0")
	}
	if got := m.inputs[inputBase].Value(); got != "10" {
		t.Errorf("base input = %q, want %q", got, "10")
	}
	if m.focus != inputLhs {
		t.Errorf("initial focus = %d, want %d", m.focus, inputLhs)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(Model)

	if got.width != 120 || got.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", got.width, got.height)
	}
}

func TestModel_View_BeforeWindowSize(t *testing.T) {
	m := newTestModel(t)
	if view := m.View(); view != "Initializing..." {
		t.Errorf("pre-size view = %q", view)
	}
}

func TestModel_View_ContainsInputsAndFooter(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := updated.(Model).View()

	for _, want := range []string{"karatcalc monitor", "lhs", "rhs", "base", "multiply", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_RandomExampleFillsInputs(t *testing.T) {
	m := newTestModel(t)
	m.inputs[inputLhs].SetValue("")
	m.inputs[inputRhs].SetValue("")
	m.inputs[inputBase].SetValue("")

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	got := updated.(Model)

	if got.inputs[inputLhs].Value() == "" {
		t.Error("random example should fill the lhs input")
	}
	if got.inputs[inputRhs].Value() == "" {
		t.Error("random example should fill the rhs input")
	}
	if got.inputs[inputBase].Value() == "" {
		t.Error("random example should fill the base input")
	}
	if got.examples.Len() != defaultExamples().Len() {
		t.Errorf("example bag should keep its size, got %d", got.examples.Len())
	}
}

func TestModel_ProgressMsg(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ProgressMsg{Value: 0.5, AverageProgress: 0.5, ETA: 2 * time.Second})
	got := updated.(Model)

	if got.progressLine == "" {
		t.Error("progress message should set the progress line")
	}

	updated, _ = got.Update(ProgressDoneMsg{})
	if updated.(Model).progressLine != "" {
		t.Error("progress done should clear the progress line")
	}
}

func TestModel_StaleCompletionIgnored(t *testing.T) {
	m := newTestModel(t)
	m.generation = 2
	m.running = true

	updated, _ := m.Update(MultiplicationCompleteMsg{ExitCode: apperrors.ExitErrorGeneric, Generation: 1})
	got := updated.(Model)

	if !got.running {
		t.Error("stale completion message should not stop the run")
	}
	if got.exitCode != apperrors.ExitSuccess {
		t.Errorf("stale completion should not set exit code, got %d", got.exitCode)
	}
}

func TestModel_CompletionSetsExitCode(t *testing.T) {
	m := newTestModel(t)
	m.running = true

	updated, _ := m.Update(MultiplicationCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Generation: 0})
	got := updated.(Model)

	if got.running {
		t.Error("completion should stop the run")
	}
	if got.exitCode != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", got.exitCode, apperrors.ExitErrorMismatch)
	}
}

func TestTruncateForLog(t *testing.T) {
	short := digit.Vector{1, 2, 3}
	if got := truncateForLog(short); got != "1,2,3" {
		t.Errorf("short vector = %q", got)
	}

	long := make(digit.Vector, 40)
	for i := range long {
		long[i] = uint64(i % 10)
	}
	got := truncateForLog(long)
	if !strings.Contains(got, ",...,") {
		t.Errorf("long vector should be truncated, got %q", got)
	}
}

func TestModel_AddLogBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxLogLines+50; i++ {
		m.addLog("line")
	}
	if len(m.logs) != maxLogLines {
		t.Errorf("log length = %d, want %d", len(m.logs), maxLogLines)
	}
}
