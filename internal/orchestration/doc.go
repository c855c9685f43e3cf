// Package orchestration coordinates the concurrent execution of one or more
// multiplication strategies and the analysis of their results. It depends on
// presentation only through small interfaces so the CLI, the TUI, and tests
// can plug in their own reporters.
package orchestration
