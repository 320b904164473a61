package voicelist

import (
	"context"
	"fmt"
	"io"

	"codeberg.org/snonux/songdeck/internal/voice"
)

// Lister handles listing available voices for a language
type Lister struct {
	catalog voice.Catalog
	out     io.Writer
}

// NewLister creates a new voice lister writing to out
func NewLister(catalog voice.Catalog, out io.Writer) *Lister {
	return &Lister{
		catalog: catalog,
		out:     out,
	}
}

// ListVoices prints the voices available for a language code. The first
// voice shown is the one the resolver will pick for synthesis.
func (l *Lister) ListVoices(ctx context.Context, languageCode string) error {
	voices, err := l.catalog.ListVoices(ctx, languageCode)
	if err != nil {
		return fmt.Errorf("failed to list voices: %w", err)
	}

	if len(voices) == 0 {
		fmt.Fprintf(l.out, "No voices available for language %s\n", languageCode)
		return nil
	}

	fmt.Fprintf(l.out, "Available voices for %s:\n", languageCode)
	for i, v := range voices {
		if i == 0 {
			fmt.Fprintf(l.out, "  %s (%s) [default]\n", v.Name, v.ID)
		} else {
			fmt.Fprintf(l.out, "  %s (%s)\n", v.Name, v.ID)
		}
	}

	return nil
}
