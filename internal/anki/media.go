package anki

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// MediaFetcher loads audio bytes from a line's audio reference. A
// reference is either a local file path written by the orchestrator or
// an http(s) URL.
type MediaFetcher struct {
	client *http.Client
}

// NewMediaFetcher creates a media fetcher with a bounded HTTP timeout
func NewMediaFetcher() *MediaFetcher {
	return &MediaFetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the audio bytes behind a reference. Callers treat a
// failure as "no media for this line", never as a fatal export error.
func (f *MediaFetcher) Fetch(ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return f.fetchURL(ref)
	}
	return os.ReadFile(ref)
}

func (f *MediaFetcher) fetchURL(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch audio: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio body: %w", err)
	}
	return data, nil
}
