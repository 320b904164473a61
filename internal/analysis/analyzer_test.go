package analysis

import (
	"errors"
	"testing"
)

const validAnalysisJSON = `{
	"songName": "Gracias a la Vida",
	"languageCode": "es-ES",
	"generalContextInformation": "Chilean folk song by Violeta Parra.",
	"lyrics": [
		{
			"line": "Gracias a la vida",
			"ipa": "ˈɡɾa.θjas a la ˈbi.ða",
			"translation": "Thanks to life",
			"literalTranslationExplanation": "gracias = thanks, a la vida = to the life"
		}
	]
}`

func TestDecodeValid(t *testing.T) {
	result, err := Decode([]byte(validAnalysisJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if result.SongName != "Gracias a la Vida" {
		t.Errorf("SongName = %q", result.SongName)
	}
	if result.LanguageCode != "es-ES" {
		t.Errorf("LanguageCode = %q", result.LanguageCode)
	}
	if len(result.Lyrics) != 1 {
		t.Fatalf("expected 1 lyric line, got %d", len(result.Lyrics))
	}
	if result.Lyrics[0].IPA != "ˈɡɾa.θjas a la ˈbi.ða" {
		t.Errorf("IPA = %q", result.Lyrics[0].IPA)
	}
	if result.Lyrics[0].AudioRef != "" {
		t.Errorf("AudioRef should start empty, got %q", result.Lyrics[0].AudioRef)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not JSON", `this is not json`},
		{"missing songName", `{"languageCode": "en-US", "lyrics": [{"line": "a"}]}`},
		{"missing languageCode", `{"songName": "x", "lyrics": [{"line": "a"}]}`},
		{"empty lyrics", `{"songName": "x", "languageCode": "en-US", "lyrics": []}`},
		{"wrong lyrics type", `{"songName": "x", "languageCode": "en-US", "lyrics": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.json))
			if err == nil {
				t.Fatal("Decode() succeeded, want ParseError")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error %v is not a *ParseError", err)
			}
		})
	}
}

func TestLyricsText(t *testing.T) {
	a := &LyricsAnalysis{
		Lyrics: []LyricLine{
			{Line: "Hello"},
			{Line: ""},
			{Line: "World"},
		},
	}

	if got := a.LyricsText(); got != "Hello\n\nWorld" {
		t.Errorf("LyricsText() = %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"Hello", false},
		{" x ", false},
	}

	for _, tt := range tests {
		l := LyricLine{Line: tt.line}
		if got := l.IsBlank(); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
