package anki

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/songdeck/internal/analysis"
)

func exportAnalysis(t *testing.T) *analysis.LyricsAnalysis {
	t.Helper()

	tempDir := t.TempDir()
	audioFile := filepath.Join(tempDir, "line_0.mp3")
	if err := os.WriteFile(audioFile, []byte("hello audio"), 0644); err != nil {
		t.Fatal(err)
	}

	return &analysis.LyricsAnalysis{
		SongName:     "Test Song",
		LanguageCode: "en-US",
		Lyrics: []analysis.LyricLine{
			{Line: "Hello", IPA: "həˈloʊ", Translation: "Hallo", AudioRef: audioFile},
			{Line: ""},
			{Line: "World", IPA: "wɜːld", Translation: "Welt"},
		},
	}
}

func TestAssembleSkipsBlankLines(t *testing.T) {
	pkg := NewExporter().Assemble(exportAnalysis(t))

	// The blank line at index 1 produces no notes; indices of the
	// surviving lines are preserved from the original array
	if len(pkg.Pronunciation.Notes) != 2 {
		t.Fatalf("pronunciation notes = %d, want 2", len(pkg.Pronunciation.Notes))
	}
	if len(pkg.Translation.Notes) != 2 {
		t.Fatalf("translation notes = %d, want 2", len(pkg.Translation.Notes))
	}

	// Golden GUIDs: pronunciation_Hello seed 0, pronunciation_World seed 2
	if pkg.Pronunciation.Notes[0].GUID != 1153798984 {
		t.Errorf("note 0 GUID = %d, want 1153798984", pkg.Pronunciation.Notes[0].GUID)
	}
	if pkg.Pronunciation.Notes[1].GUID != 350307014 {
		t.Errorf("note 1 GUID = %d, want 350307014", pkg.Pronunciation.Notes[1].GUID)
	}
}

func TestAssembleEmbedsAvailableMedia(t *testing.T) {
	pkg := NewExporter().Assemble(exportAnalysis(t))

	data, ok := pkg.Media["line_0.mp3"]
	if !ok {
		t.Fatal("line_0.mp3 missing from media table")
	}
	if string(data) != "hello audio" {
		t.Errorf("media bytes = %q", data)
	}

	if pkg.Pronunciation.Notes[0].Fields[2] != "[sound:line_0.mp3]" {
		t.Errorf("audio field = %q", pkg.Pronunciation.Notes[0].Fields[2])
	}
	// Line 2 has no audio ref; empty Audio field, no media entry
	if pkg.Pronunciation.Notes[1].Fields[2] != "" {
		t.Errorf("audio field for line without audio = %q", pkg.Pronunciation.Notes[1].Fields[2])
	}
	if len(pkg.Media) != 1 {
		t.Errorf("media table has %d entries, want 1", len(pkg.Media))
	}
}

func TestAssembleMediaFetchFailureNonFatal(t *testing.T) {
	a := exportAnalysis(t)
	a.Lyrics[0].AudioRef = filepath.Join(t.TempDir(), "missing.mp3")

	pkg := NewExporter().Assemble(a)

	if len(pkg.Pronunciation.Notes) != 2 {
		t.Fatalf("pronunciation notes = %d, want 2", len(pkg.Pronunciation.Notes))
	}
	if pkg.Pronunciation.Notes[0].Fields[2] != "" {
		t.Errorf("audio field = %q, want empty after fetch failure", pkg.Pronunciation.Notes[0].Fields[2])
	}
	if len(pkg.Media) != 0 {
		t.Errorf("media table has %d entries, want 0", len(pkg.Media))
	}
}

func TestAssembleNoAudioAtAll(t *testing.T) {
	a := exportAnalysis(t)
	for i := range a.Lyrics {
		a.Lyrics[i].AudioRef = ""
	}

	pkg := NewExporter().Assemble(a)

	if len(pkg.Media) != 0 {
		t.Errorf("media table has %d entries, want 0", len(pkg.Media))
	}
	for i, note := range pkg.Pronunciation.Notes {
		if note.Fields[2] != "" {
			t.Errorf("note %d audio field = %q, want empty", i, note.Fields[2])
		}
	}
}

func TestAssembleIdentifiersReproducible(t *testing.T) {
	a := exportAnalysis(t)
	exporter := NewExporter()

	first := exporter.Assemble(a)
	second := exporter.Assemble(a)

	if first.Pronunciation.ID != second.Pronunciation.ID {
		t.Error("pronunciation deck ID not reproducible")
	}
	if first.Translation.ID != second.Translation.ID {
		t.Error("translation deck ID not reproducible")
	}
	for i := range first.Pronunciation.Notes {
		if first.Pronunciation.Notes[i].GUID != second.Pronunciation.Notes[i].GUID {
			t.Errorf("note %d GUID not reproducible", i)
		}
	}
}
