// Package ui manages terminal color themes shared by the CLI and the TUI.
package ui
