package cli

import (
	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Language   string
	BatchFile  string
	ListModels bool
	TUIMode    bool
	JSON       bool

	// Provider flags
	Provider string
	Model    string
	BaseURL  string

	// Export flags
	AnkiPath string
	CSVPath  string
	DeckName string

	// Logging flags
	Debug   bool
	LogJSON bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language: language.Default,
		Provider: translation.ProviderGemini,
		DeckName: "Glossy Flash",
	}
}
