package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/songdeck/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "songdeck [song title]",
		Short: "Song Lyrics Anki Deck Generator",
		Long: `songdeck turns song lyrics into Anki flashcard decks.

It analyzes the lyrics line by line (IPA transcription, translation,
literal explanation), synthesizes per-line pronunciation audio via a
TTS provider and packages everything into an importable .apkg file.

Examples:
  songdeck "Gracias a la Vida" --lyrics gracias.txt
  songdeck --batch songs.txt              # Process multiple songs from a manifest
  songdeck --list-voices es-ES            # Show available voices for a language`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "songdeck", "songs")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.songdeck.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().StringVarP(&flags.LyricsFile, "lyrics", "l", "", "File containing the song lyrics")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process songs from a manifest file (Song Title = lyrics-file per line)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Speech provider (openai or gemini)")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip audio synthesis")
	cmd.Flags().BoolVar(&flags.CSV, "csv", false, "Write CSV files instead of an APKG package")
	cmd.Flags().StringVar(&flags.ListVoices, "list-voices", "", "List available voices for a language code and exit")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the songs directory after export")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")

	// Gemini flags
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini TTS model")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("speech.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("speech.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("speech.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
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

		// Search config in home directory with name ".songdeck" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".songdeck")
	}

	// Environment variables
	viper.SetEnvPrefix("SONGDECK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("speech.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("speech.gemini_key")
}
