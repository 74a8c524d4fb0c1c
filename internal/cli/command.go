package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/glossyflash/internal"
	"codeberg.org/snonux/glossyflash/internal/language"
	"codeberg.org/snonux/glossyflash/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glossyflash [glosses...]",
		Short: "AI flashcard generator for language learners",
		Long: `glossyflash turns a list of words or phrases into a deck of study
flashcards in the language you are learning.

Each gloss becomes a card with the term in the target language, its
meaning and an optional example sentence.

Examples:
  glossyflash                                  # Launch interactive GUI (default)
  glossyflash --tui                            # Launch the terminal UI
  glossyflash --lang French "cat, dog"         # Generate a deck on the command line
  glossyflash --lang German --batch words.txt  # Read glosses from a file
  glossyflash --lang Spanish --anki deck.apkg "to eat"`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.glossyflash.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.LogJSON, "log-json", false, "Write logs as JSON")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "lang", "l", flags.Language,
		"Target language: "+strings.Join(language.All(), ", "))
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Read glosses from file (one per line)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available models for the configured provider")
	cmd.Flags().BoolVar(&flags.TUIMode, "tui", false, "Run the terminal user interface instead of the GUI")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the generated deck as JSON")

	// Provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider,
		fmt.Sprintf("Generation provider: %s or %s", translation.ProviderGemini, translation.ProviderOpenAI))
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name (default depends on provider)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Override the provider API endpoint")

	// Export flags
	cmd.Flags().StringVar(&flags.AnkiPath, "anki", "", "Write the generated deck to an Anki package (.apkg)")
	cmd.Flags().StringVar(&flags.CSVPath, "csv", "", "Write the generated deck to a CSV file")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translation.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("translation.language", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("export.deck_name", cmd.Flags().Lookup("deck-name"))
}

// InitConfig initializes viper configuration. A .env file in the working
// directory is loaded first so its variables take part in the lookup.
func InitConfig(cfgFile string) {
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".glossyflash" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".glossyflash")
	}

	// Environment variables
	viper.SetEnvPrefix("GLOSSYFLASH")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the API key for provider. The generic API_KEY wins,
// then the provider specific variable, then the config file. An empty result
// is allowed; requests will then fail as transport failures.
func GetAPIKey(provider string) string {
	if key := os.Getenv("API_KEY"); key != "" {
		return key
	}

	envName := "GEMINI_API_KEY"
	if provider == translation.ProviderOpenAI {
		envName = "OPENAI_API_KEY"
	}
	if key := os.Getenv(envName); key != "" {
		return key
	}

	return viper.GetString("translation.api_key")
}

// TranslationConfig assembles the transport configuration. Bound flags
// resolve through viper (flag, then env, then config file, then default);
// the raw flag value is the fallback when nothing was bound.
func TranslationConfig(flags *Flags) *translation.Config {
	cfg := translation.DefaultConfig()
	cfg.Provider = firstNonEmpty(viper.GetString("translation.provider"), flags.Provider, translation.ProviderGemini)
	cfg.Model = firstNonEmpty(viper.GetString("translation.model"), flags.Model)
	cfg.BaseURL = firstNonEmpty(viper.GetString("translation.base_url"), flags.BaseURL)
	cfg.APIKey = GetAPIKey(cfg.Provider)
	return cfg
}

// TargetLanguage returns the configured target language
func TargetLanguage(flags *Flags) string {
	return firstNonEmpty(viper.GetString("translation.language"), flags.Language, language.Default)
}

// DeckName returns the configured export deck name
func DeckName(flags *Flags) string {
	return firstNonEmpty(viper.GetString("export.deck_name"), flags.DeckName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
