package voicelist

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/songdeck/internal/voice"
)

type stubCatalog struct {
	voices []voice.Voice
	err    error
}

func (c *stubCatalog) ListVoices(_ context.Context, _ string) ([]voice.Voice, error) {
	return c.voices, c.err
}

func TestListVoices(t *testing.T) {
	catalog := &stubCatalog{voices: []voice.Voice{
		{ID: "alloy", Name: "Alloy", LanguageCode: "es-ES"},
		{ID: "nova", Name: "Nova", LanguageCode: "es-ES"},
	}}

	var buf bytes.Buffer
	lister := NewLister(catalog, &buf)

	if err := lister.ListVoices(context.Background(), "es-ES"); err != nil {
		t.Fatalf("ListVoices() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Available voices for es-ES:") {
		t.Errorf("missing header in output: %q", out)
	}
	if !strings.Contains(out, "Alloy (alloy) [default]") {
		t.Errorf("first voice not marked as default: %q", out)
	}
	if !strings.Contains(out, "Nova (nova)") {
		t.Errorf("missing second voice: %q", out)
	}
}

func TestListVoices_Empty(t *testing.T) {
	var buf bytes.Buffer
	lister := NewLister(&stubCatalog{}, &buf)

	if err := lister.ListVoices(context.Background(), "xx-XX"); err != nil {
		t.Fatalf("ListVoices() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No voices available for language xx-XX") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestListVoices_CatalogError(t *testing.T) {
	var buf bytes.Buffer
	lister := NewLister(&stubCatalog{err: errors.New("upstream down")}, &buf)

	if err := lister.ListVoices(context.Background(), "es-ES"); err == nil {
		t.Error("Expected error from failing catalog")
	}
}
