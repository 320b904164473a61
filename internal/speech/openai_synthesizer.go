package speech

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/songdeck/internal/voice"
)

// openAIVoices is the provider's catalog order. Every entry supports
// the neural tier and is multilingual, so the language filter does not
// narrow the set; first-entry selection still has to be stable.
var openAIVoices = []string{
	"alloy", "ash", "ballad", "coral", "echo", "fable",
	"onyx", "nova", "sage", "shimmer", "verse",
}

// OpenAICatalog lists OpenAI TTS voices
type OpenAICatalog struct{}

// ListVoices returns the OpenAI voices in catalog order
func (c *OpenAICatalog) ListVoices(_ context.Context, languageCode string) ([]voice.Voice, error) {
	voices := make([]voice.Voice, len(openAIVoices))
	for i, id := range openAIVoices {
		voices[i] = voice.Voice{
			ID:           id,
			Name:         id,
			LanguageCode: languageCode,
		}
	}
	return voices, nil
}

// OpenAISynthesizer implements Synthesizer via the OpenAI TTS API
type OpenAISynthesizer struct {
	client   *openai.Client
	config   *Config
	resolver *voice.Resolver
}

// NewOpenAISynthesizer creates a new OpenAI TTS synthesizer
func NewOpenAISynthesizer(config *Config, resolver *voice.Resolver) (Synthesizer, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAISynthesizer{
		client:   openai.NewClient(config.OpenAIKey),
		config:   config,
		resolver: resolver,
	}, nil
}

// SynthesizeIPA synthesizes pronunciation audio for an IPA string and
// returns the MP3 bytes
func (s *OpenAISynthesizer) SynthesizeIPA(ctx context.Context, ipa, languageCode string) ([]byte, error) {
	voiceID, err := s.resolver.Resolve(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.config.OpenAIModel),
		Input:          strings.TrimSpace(ipa),
		Voice:          openai.SpeechVoice(voiceID),
		Speed:          s.config.OpenAISpeed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	// The instructions field only works on the gpt-4o models
	if s.config.OpenAIModel == "gpt-4o-mini-tts" || s.config.OpenAIModel == "gpt-4o-mini-audio-preview" {
		req.Instructions = pronunciationInstruction
	}

	response, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoAudio
	}

	return data, nil
}

// Name returns the provider name
func (s *OpenAISynthesizer) Name() string {
	return "openai"
}
