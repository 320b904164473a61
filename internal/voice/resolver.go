package voice

import "context"

// Resolver maps a language code to a synthesis voice ID, memoizing the
// result in the injected cache so repeated lines of the same song cause
// at most one catalog query per language.
type Resolver struct {
	catalog Catalog
	cache   *Cache
}

// NewResolver creates a resolver backed by the given catalog and cache
func NewResolver(catalog Catalog, cache *Cache) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{
		catalog: catalog,
		cache:   cache,
	}
}

// Resolve returns the voice ID to use for a language code. On a cache
// hit no catalog query is made. On a miss it takes the first voice the
// catalog returns (catalog order is provider-defined, there is no local
// tie-break) and caches it before returning.
func (r *Resolver) Resolve(ctx context.Context, languageCode string) (string, error) {
	if voiceID, ok := r.cache.Get(languageCode); ok {
		return voiceID, nil
	}

	voices, err := r.catalog.ListVoices(ctx, languageCode)
	if err != nil {
		return "", err
	}
	if len(voices) == 0 {
		return "", &NotFoundError{LanguageCode: languageCode}
	}

	voiceID := voices[0].ID
	r.cache.Put(languageCode, voiceID)
	return voiceID, nil
}
