package anki

// If you change a model's fields or templates, bump its ID constant by
// one. Imports of packages exported with the old shape would otherwise
// silently misinterpret the fields.
const (
	PronunciationModelID int64 = 1740052059953
	TranslationModelID   int64 = 1740052059954
)

// Template is one card render template of a model
type Template struct {
	Name string
	Qfmt string
	Afmt string
}

// CardModel is a note schema: ordered field names plus the templates
// that render a note into cards. Model IDs are hard-coded constants,
// not content-derived.
type CardModel struct {
	ID     int64
	Name   string
	Fields []string
	Templates []Template
}

// PronunciationModel returns the model for pronunciation notes
func PronunciationModel() *CardModel {
	return &CardModel{
		ID:     PronunciationModelID,
		Name:   "Song Pronunciation Model",
		Fields: []string{"Original", "IPA", "Audio"},
		Templates: []Template{
			{
				Name: "Pronunciation Card",
				Qfmt: "{{Original}}",
				Afmt: `{{FrontSide}}<hr id="answer">IPA: {{IPA}}<br><br>{{Audio}}`,
			},
		},
	}
}

// TranslationModel returns the model for translation notes
func TranslationModel() *CardModel {
	return &CardModel{
		ID:     TranslationModelID,
		Name:   "Song Translation Model",
		Fields: []string{"Original", "Translation", "LiteralMeaning"},
		Templates: []Template{
			{
				Name: "Translation Card",
				Qfmt: "{{Original}}",
				Afmt: `{{FrontSide}}<hr id="answer">Translation: {{Translation}}<br><br>Literal Meaning: {{LiteralMeaning}}`,
			},
		},
	}
}

// generationRequirement is the same for both models: produce a card
// whenever field 0 (Original) is non-empty
func generationRequirement() []interface{} {
	return []interface{}{
		[]interface{}{0, "all", []int{0}},
	}
}
