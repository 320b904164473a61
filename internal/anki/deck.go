package anki

import (
	"fmt"

	"codeberg.org/snonux/songdeck/internal/analysis"
	"codeberg.org/snonux/songdeck/internal/hash"
)

// Role seeds for deck identity derivation. Fixed forever: re-exports
// must land in the same Anki decks.
const (
	pronunciationSeed int32 = 1
	translationSeed   int32 = 2
)

// Deck is a named, identified collection of notes
type Deck struct {
	ID    int64
	Name  string
	Notes []Note
}

// AddNote appends a note to the deck
func (d *Deck) AddNote(note Note) {
	d.Notes = append(d.Notes, note)
}

// BuildDecks derives the two deck identities from the song's content
// and returns two empty decks. Identity depends only on the
// concatenated line texts plus the role seed, never on the title,
// language, or translations: two analyses with identical lines map to
// identical decks across sessions.
func BuildDecks(a *analysis.LyricsAnalysis) (pronunciation, translation *Deck) {
	digest := a.LyricsText()

	pronunciation = &Deck{
		ID:   hash.Sum(digest, pronunciationSeed),
		Name: fmt.Sprintf("%s - Pronunciation", a.SongName),
	}
	translation = &Deck{
		ID:   hash.Sum(digest, translationSeed),
		Name: fmt.Sprintf("%s - Translation", a.SongName),
	}
	return pronunciation, translation
}
