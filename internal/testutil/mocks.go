package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/songdeck/internal/analysis"
	"codeberg.org/snonux/songdeck/internal/voice"
)

// FakeCatalog returns a fixed voice list per language
type FakeCatalog struct {
	Voices map[string][]voice.Voice
	Errors map[string]error
	Calls  []string
}

// ListVoices returns the scripted voices for a language code
func (c *FakeCatalog) ListVoices(_ context.Context, languageCode string) ([]voice.Voice, error) {
	c.Calls = append(c.Calls, fmt.Sprintf("ListVoices %s", languageCode))

	if err, ok := c.Errors[languageCode]; ok {
		return nil, err
	}

	return c.Voices[languageCode], nil
}

// FakeSynthesizer returns scripted audio per IPA string
type FakeSynthesizer struct {
	Audio  map[string][]byte
	Errors map[string]error
	Calls  []string
}

// SynthesizeIPA returns the scripted audio for an IPA string
func (s *FakeSynthesizer) SynthesizeIPA(_ context.Context, ipa, languageCode string) ([]byte, error) {
	s.Calls = append(s.Calls, fmt.Sprintf("SynthesizeIPA %s (%s)", ipa, languageCode))

	if err, ok := s.Errors[ipa]; ok {
		return nil, err
	}

	if data, ok := s.Audio[ipa]; ok {
		return data, nil
	}

	// Default response
	return []byte("fake audio data"), nil
}

// Name identifies the fake provider
func (s *FakeSynthesizer) Name() string {
	return "fake"
}

// NewAnalysis builds a small lyrics analysis fixture
func NewAnalysis(songName string, lines ...string) *analysis.LyricsAnalysis {
	a := &analysis.LyricsAnalysis{
		SongName:                  songName,
		LanguageCode:              "es-ES",
		GeneralContextInformation: "A test song.",
	}
	for _, line := range lines {
		a.Lyrics = append(a.Lyrics, analysis.LyricLine{
			Line:                          line,
			IPA:                           "ipa:" + line,
			Translation:                   "translation of " + line,
			LiteralTranslationExplanation: "literal explanation of " + line,
		})
	}
	return a
}
