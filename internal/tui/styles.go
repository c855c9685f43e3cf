package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/karatcalc/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	elapsedStyle      lipgloss.Style
	inputLabelStyle   lipgloss.Style
	logTimeStyle      lipgloss.Style
	logAlgoStyle      lipgloss.Style
	logProgressStyle  lipgloss.Style
	logSuccessStyle   lipgloss.Style
	logErrorStyle     lipgloss.Style
	footerKeyStyle    lipgloss.Style
	footerDescStyle   lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	sysStatsStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logAlgoStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	logProgressStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	logSuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusRunningStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	sysStatsStyle = lipgloss.NewStyle().
		Foreground(t.Warning)
}
