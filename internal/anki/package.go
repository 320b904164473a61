package anki

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/songdeck/internal"
	"codeberg.org/snonux/songdeck/internal/analysis"
)

// Package aggregates the two decks, their notes, the two models, and
// the media table of one export. It is built fresh per export,
// serialized to a single .apkg file, and discarded.
type Package struct {
	Pronunciation *Deck
	Translation   *Deck
	Models        []*CardModel
	Media         map[string][]byte // filename -> audio bytes
}

// PackagingError indicates the container could not be written. Fatal
// for the export; not retried.
type PackagingError struct {
	Err error
}

func (e *PackagingError) Error() string {
	return fmt.Sprintf("failed to generate Anki package: %v", e.Err)
}

func (e *PackagingError) Unwrap() error {
	return e.Err
}

// Exporter assembles and serializes flashcard packages from a
// completed lyrics analysis
type Exporter struct {
	fetcher *MediaFetcher
}

// NewExporter creates an exporter
func NewExporter() *Exporter {
	return &Exporter{fetcher: NewMediaFetcher()}
}

// Assemble builds the in-memory package for an analysis. Lines that
// are blank produce no notes in either deck. A line whose audio cannot
// be fetched gets a pronunciation note with an empty Audio field; the
// failure is logged and does not abort the export.
func (e *Exporter) Assemble(a *analysis.LyricsAnalysis) *Package {
	pronunciation, translation := BuildDecks(a)

	pkg := &Package{
		Pronunciation: pronunciation,
		Translation:   translation,
		Models:        []*CardModel{PronunciationModel(), TranslationModel()},
		Media:         make(map[string][]byte),
	}

	for i, line := range a.Lyrics {
		if line.IsBlank() {
			continue
		}

		hasAudio := false
		if line.AudioRef != "" {
			data, err := e.fetcher.Fetch(line.AudioRef)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: no media for line %d: %v\n", i, err)
			} else {
				pkg.Media[MediaFilename(i)] = data
				hasAudio = true
			}
		}

		pronNote, transNote := BuildNotes(i, line, hasAudio)
		pkg.Pronunciation.AddNote(pronNote)
		pkg.Translation.AddNote(transNote)
	}

	return pkg
}

// Export assembles the package and serializes it into outputDir. The
// filename is the song name with whitespace collapsed to underscores
// plus the .apkg extension. Returns the path of the written file.
func (e *Exporter) Export(a *analysis.LyricsAnalysis, outputDir string) (string, error) {
	pkg := e.Assemble(a)

	outputPath := filepath.Join(outputDir, internal.PackageFilename(a.SongName, "apkg"))
	if err := NewAPKGGenerator(pkg).Generate(outputPath); err != nil {
		return "", err
	}

	return outputPath, nil
}
