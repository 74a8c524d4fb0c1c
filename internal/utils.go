package internal

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateCardID creates an identifier for the card at position index of a deck
// generated at the given time.
// Format: card-<epochMillis>-<index>
func GenerateCardID(generatedAt time.Time, index int) string {
	return fmt.Sprintf("card-%d-%d", generatedAt.UnixMilli(), index)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isAlphaNumeric checks if a rune is a letter or digit in any script
func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
