package anki

import (
	"fmt"

	"codeberg.org/snonux/songdeck/internal/analysis"
	"codeberg.org/snonux/songdeck/internal/hash"
)

// Note is a structured record the model renders into study cards. GUID
// is the stable identity Anki uses to match re-imported notes against
// existing ones.
type Note struct {
	ModelID int64
	GUID    int64
	Fields  []string
}

// MediaFilename is the deterministic media name for a line's audio.
// The index is the line's position in the original lyrics array, not a
// compacted position, so it stays aligned with the orchestrator's
// numbering.
func MediaFilename(index int) string {
	return fmt.Sprintf("line_%d.mp3", index)
}

// MediaTag is the field reference to an embedded audio file
func MediaTag(index int) string {
	return fmt.Sprintf("[sound:%s]", MediaFilename(index))
}

// BuildNotes creates the pronunciation and translation note for the
// line at the given index. hasAudio selects whether the pronunciation
// note references the line's media file or carries an empty Audio
// field.
//
// The GUID mixes the role-prefixed line text with the line index as
// seed. Editing a line's wording at a fixed position therefore yields
// a new card on re-import, and so does reordering unchanged lines.
// The formula is kept as-is for compatibility with existing exports.
func BuildNotes(index int, line analysis.LyricLine, hasAudio bool) (pronunciation, translation Note) {
	audioField := ""
	if hasAudio {
		audioField = MediaTag(index)
	}

	pronunciation = Note{
		ModelID: PronunciationModelID,
		GUID:    hash.Sum("pronunciation_"+line.Line, int32(index)),
		Fields:  []string{line.Line, line.IPA, audioField},
	}
	translation = Note{
		ModelID: TranslationModelID,
		GUID:    hash.Sum("translation_"+line.Line, int32(index)),
		Fields:  []string{line.Line, line.Translation, line.LiteralTranslationExplanation},
	}
	return pronunciation, translation
}
