// Package session implements the presentation controller shared by the
// desktop and terminal front ends: an explicit Model changed only through
// Session.Dispatch. Front ends render the Model and run the GenerateCmd
// returned by Dispatch, feeding its Result back as GenerationFinished.
package session
