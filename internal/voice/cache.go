package voice

import "sync"

// Cache memoizes resolved voice IDs per language code for the lifetime
// of a session. Entries are append-only; there is no invalidation. The
// cache is an explicit dependency of the resolver so tests can seed it.
type Cache struct {
	mu     sync.Mutex
	voices map[string]string
}

// NewCache creates an empty voice cache
func NewCache() *Cache {
	return &Cache{
		voices: make(map[string]string),
	}
}

// Get retrieves a cached voice ID for a language code
func (c *Cache) Get(languageCode string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	voiceID, ok := c.voices[languageCode]
	return voiceID, ok
}

// Put stores a resolved voice ID for a language code
func (c *Cache) Put(languageCode, voiceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.voices[languageCode] = voiceID
}

// Len returns the number of cached language codes
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.voices)
}
