// Package gui implements the Fyne desktop front end. Every user action is
// turned into a session message; the window is re-rendered from the
// resulting session model after each dispatch.
package gui
