package voice

import (
	"context"
	"fmt"
)

// Voice is one synthesis voice from a provider's catalog
type Voice struct {
	ID           string
	Name         string
	LanguageCode string
}

// Catalog lists the synthesis voices available for a language code.
// Implementations return only voices of the quality tier they support
// (the neural tier for the remote providers), in the provider-defined
// order. The order matters: the resolver picks the first entry.
type Catalog interface {
	ListVoices(ctx context.Context, languageCode string) ([]Voice, error)
}

// NotFoundError indicates the catalog has no voice for a language
type NotFoundError struct {
	LanguageCode string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no voices found for language code: %s", e.LanguageCode)
}
