package speech

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/snonux/songdeck/internal/voice"
)

// ErrNoAudio indicates the remote synthesis capability returned no
// audio stream for an otherwise successful call
var ErrNoAudio = errors.New("no audio stream returned")

// Synthesizer turns one IPA transcription into an audio byte buffer
type Synthesizer interface {
	// SynthesizeIPA synthesizes slow-rate phoneme pronunciation audio
	// for the given IPA string in the given language
	SynthesizeIPA(ctx context.Context, ipa, languageCode string) ([]byte, error)

	// Name returns the provider name
	Name() string
}

// Config holds common configuration for speech providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAISpeed float64 // 0.25 to 4.0

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-2.5-flash-preview-tts"
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAISpeed: 0.8, // slow rate for language learners
		GeminiModel: "gemini-2.5-flash-preview-tts",
	}
}

// NewSynthesizer creates the configured speech provider. The resolver
// supplies the voice for each language code.
func NewSynthesizer(config *Config, resolver *voice.Resolver) (Synthesizer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAISynthesizer(config, resolver)
	case "gemini":
		return NewGeminiSynthesizer(config, resolver)
	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// NewCatalog creates the voice catalog matching the configured provider
func NewCatalog(config *Config) (voice.Catalog, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return &OpenAICatalog{}, nil
	case "gemini":
		return &GeminiCatalog{}, nil
	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// pronunciationInstruction is the markup instruction sent alongside the
// IPA input, requesting slow phoneme-mode pronunciation
const pronunciationInstruction = "The input is an International Phonetic Alphabet (IPA) transcription. " +
	"Pronounce exactly the phonemes it describes, slowly and clearly for a language learner. " +
	"Do not read the IPA symbols as letters."
