package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/songdeck/internal"
)

// WriteCSV writes the package's notes as Anki-importable CSV files,
// one per deck, for users who prefer the legacy import path over
// .apkg. Audio field references still point at the media filenames;
// the media files themselves are not bundled in this format.
func WriteCSV(pkg *Package, outputDir string) ([]string, error) {
	var written []string

	for _, deck := range []*Deck{pkg.Pronunciation, pkg.Translation} {
		model := modelForDeck(pkg, deck)
		path := filepath.Join(outputDir, internal.PackageFilename(deck.Name, "csv"))
		if err := writeDeckCSV(deck, model, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func modelForDeck(pkg *Package, deck *Deck) *CardModel {
	if len(deck.Notes) == 0 {
		return pkg.Models[0]
	}
	for _, model := range pkg.Models {
		if model.ID == deck.Notes[0].ModelID {
			return model
		}
	}
	return pkg.Models[0]
}

func writeDeckCSV(deck *Deck, model *CardModel, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(model.Fields); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, note := range deck.Notes {
		if err := writer.Write(note.Fields); err != nil {
			return fmt.Errorf("failed to write note: %w", err)
		}
	}

	return nil
}
