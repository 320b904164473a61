package analysis

import (
	"fmt"
	"strings"
)

// LyricLine is a single line of lyrics with its linguistic analysis.
// AudioRef is empty until the audio orchestrator attaches a reference
// to the synthesized pronunciation audio; it is set at most once.
type LyricLine struct {
	Line                          string `json:"line"`
	IPA                           string `json:"ipa"`
	Translation                   string `json:"translation"`
	LiteralTranslationExplanation string `json:"literalTranslationExplanation"`
	AudioRef                      string `json:"ipaAudioRef,omitempty"`
}

// IsBlank reports whether the line carries no exportable text. Blank
// lines receive no audio and produce no notes; the same rule is applied
// by the orchestrator and the note builder so line indices stay aligned.
func (l LyricLine) IsBlank() bool {
	return strings.TrimSpace(l.Line) == ""
}

// LyricsAnalysis is the complete analysis of a song. Lyrics ordering is
// the canonical presentation and export order and must never change
// after creation.
type LyricsAnalysis struct {
	SongName                  string      `json:"songName"`
	LanguageCode              string      `json:"languageCode"`
	GeneralContextInformation string      `json:"generalContextInformation"`
	Lyrics                    []LyricLine `json:"lyrics"`
}

// LyricsText returns the line texts joined with newlines. This is the
// digest input for deck identity derivation.
func (a *LyricsAnalysis) LyricsText() string {
	lines := make([]string, len(a.Lyrics))
	for i, line := range a.Lyrics {
		lines[i] = line.Line
	}
	return strings.Join(lines, "\n")
}

// ParseError indicates the remote analysis capability returned data
// that does not satisfy the LyricsAnalysis schema.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid analysis response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid analysis response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Validate checks the schema invariants on a decoded analysis
func (a *LyricsAnalysis) Validate() error {
	if strings.TrimSpace(a.SongName) == "" {
		return &ParseError{Reason: "missing songName"}
	}
	if strings.TrimSpace(a.LanguageCode) == "" {
		return &ParseError{Reason: "missing languageCode"}
	}
	if len(a.Lyrics) == 0 {
		return &ParseError{Reason: "empty lyrics array"}
	}
	return nil
}
