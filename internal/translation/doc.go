// Package translation turns raw gloss text into a deck of flashcards by asking
// a generative-language service (Gemini or OpenAI) for structured JSON. Every
// call yields a tagged Result so callers can apply their own policy to
// transport failures and malformed responses.
package translation
