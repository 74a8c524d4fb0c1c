// Package tui is the terminal front-end. It renders the same study session
// as the GUI with tview and reads keys through tcell.
package tui
