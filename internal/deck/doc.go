// Package deck defines the flashcard and deck types shared by the translation
// adapter, the session state machine and every front end.
package deck
