package speech

import (
	"context"
	"encoding/binary"
	"fmt"

	"google.golang.org/genai"

	"codeberg.org/snonux/songdeck/internal/voice"
)

// geminiVoices is the prebuilt voice catalog in provider order. All of
// them are multilingual neural voices.
var geminiVoices = []string{
	"Zephyr", "Puck", "Charon", "Kore", "Fenrir", "Leda",
	"Orus", "Aoede", "Callirrhoe", "Autonoe", "Enceladus", "Iapetus",
}

// GeminiCatalog lists Gemini TTS prebuilt voices
type GeminiCatalog struct{}

// ListVoices returns the Gemini prebuilt voices in catalog order
func (c *GeminiCatalog) ListVoices(_ context.Context, languageCode string) ([]voice.Voice, error) {
	voices := make([]voice.Voice, len(geminiVoices))
	for i, id := range geminiVoices {
		voices[i] = voice.Voice{
			ID:           id,
			Name:         id,
			LanguageCode: languageCode,
		}
	}
	return voices, nil
}

// GeminiSynthesizer implements Synthesizer via Gemini native TTS.
// Gemini returns raw 24kHz 16-bit mono PCM, which is wrapped in a WAV
// header so the buffer is playable as-is.
type GeminiSynthesizer struct {
	client   *genai.Client
	config   *Config
	resolver *voice.Resolver
}

// NewGeminiSynthesizer creates a new Gemini TTS synthesizer
func NewGeminiSynthesizer(config *Config, resolver *voice.Resolver) (Synthesizer, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSynthesizer{
		client:   client,
		config:   config,
		resolver: resolver,
	}, nil
}

// SynthesizeIPA synthesizes pronunciation audio for an IPA string
func (s *GeminiSynthesizer) SynthesizeIPA(ctx context.Context, ipa, languageCode string) ([]byte, error) {
	voiceID, err := s.resolver.Resolve(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("%s\n\nIPA: %s", pronunciationInstruction, ipa)

	resp, err := s.client.Models.GenerateContent(ctx, s.config.GeminiModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: voiceID,
					},
				},
				LanguageCode: languageCode,
			},
		})
	if err != nil {
		return nil, fmt.Errorf("Gemini TTS API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoAudio
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return wrapPCMInWAV(part.InlineData.Data, 24000), nil
		}
	}

	return nil, ErrNoAudio
}

// Name returns the provider name
func (s *GeminiSynthesizer) Name() string {
	return "gemini"
}

// wrapPCMInWAV prepends a RIFF/WAVE header to 16-bit mono PCM samples
func wrapPCMInWAV(pcm []byte, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	return append(header, pcm...)
}
