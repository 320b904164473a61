package speech

import (
	"context"
	"testing"

	"codeberg.org/snonux/songdeck/internal/voice"
)

func TestNewSynthesizerUnknownProvider(t *testing.T) {
	config := &Config{Provider: "polly"}

	_, err := NewSynthesizer(config, voice.NewResolver(&OpenAICatalog{}, nil))
	if err == nil {
		t.Fatal("NewSynthesizer() succeeded for unknown provider")
	}
}

func TestNewOpenAISynthesizerRequiresKey(t *testing.T) {
	config := DefaultConfig()

	_, err := NewOpenAISynthesizer(config, voice.NewResolver(&OpenAICatalog{}, nil))
	if err == nil {
		t.Fatal("NewOpenAISynthesizer() succeeded without API key")
	}
}

func TestOpenAICatalogOrderStable(t *testing.T) {
	catalog := &OpenAICatalog{}

	first, err := catalog.ListVoices(context.Background(), "es-ES")
	if err != nil {
		t.Fatalf("ListVoices() error = %v", err)
	}
	second, _ := catalog.ListVoices(context.Background(), "es-ES")

	if len(first) == 0 {
		t.Fatal("ListVoices() returned no voices")
	}
	if first[0].ID != "alloy" {
		t.Errorf("first voice = %q, want %q", first[0].ID, "alloy")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("catalog order not stable at %d: %q != %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestGeminiCatalogOrderStable(t *testing.T) {
	catalog := &GeminiCatalog{}

	voices, err := catalog.ListVoices(context.Background(), "fr-FR")
	if err != nil {
		t.Fatalf("ListVoices() error = %v", err)
	}
	if len(voices) == 0 {
		t.Fatal("ListVoices() returned no voices")
	}
	if voices[0].ID != "Zephyr" {
		t.Errorf("first voice = %q, want %q", voices[0].ID, "Zephyr")
	}
}

// failingSynthesizer always fails, for breaker testing
type failingSynthesizer struct {
	calls int
}

func (s *failingSynthesizer) SynthesizeIPA(context.Context, string, string) ([]byte, error) {
	s.calls++
	return nil, ErrNoAudio
}

func (s *failingSynthesizer) Name() string { return "failing" }

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &failingSynthesizer{}
	breaker := NewBreakerSynthesizer(inner)

	for i := 0; i < 10; i++ {
		_, err := breaker.SynthesizeIPA(context.Background(), "həˈloʊ", "en-US")
		if err == nil {
			t.Fatalf("call %d succeeded unexpectedly", i)
		}
	}

	// After the trip threshold, calls fail fast without reaching the
	// inner synthesizer
	if inner.calls >= 10 {
		t.Errorf("breaker never opened: inner called %d times", inner.calls)
	}
}

// cannedSynthesizer returns fixed bytes
type cannedSynthesizer struct {
	data []byte
}

func (s *cannedSynthesizer) SynthesizeIPA(context.Context, string, string) ([]byte, error) {
	return s.data, nil
}

func (s *cannedSynthesizer) Name() string { return "canned" }

func TestBreakerPassesThroughSuccess(t *testing.T) {
	breaker := NewBreakerSynthesizer(&cannedSynthesizer{data: []byte("mp3 bytes")})

	data, err := breaker.SynthesizeIPA(context.Background(), "həˈloʊ", "en-US")
	if err != nil {
		t.Fatalf("SynthesizeIPA() error = %v", err)
	}
	if string(data) != "mp3 bytes" {
		t.Errorf("SynthesizeIPA() = %q", data)
	}
}

func TestWrapPCMInWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	wav := wrapPCMInWAV(pcm, 24000)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("wav length = %d, want %d", len(wav), 44+len(pcm))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE magic: %q %q", wav[0:4], wav[8:12])
	}
	if string(wav[44:]) != string(pcm) {
		t.Error("PCM payload not preserved")
	}
}
