package internal

import (
	"strings"
	"testing"
)

func TestGenerateSongID(t *testing.T) {
	id1 := GenerateSongID("Gracias a la Vida")
	id2 := GenerateSongID("Ne me quitte pas")

	if id1 == "" || id2 == "" {
		t.Fatal("GenerateSongID returned empty string")
	}

	parts := strings.Split(id1, "_")
	if len(parts) != 2 {
		t.Fatalf("Unexpected ID format: %s", id1)
	}
	if len(parts[1]) != 8 {
		t.Errorf("Expected 8 hash characters, got %d in %s", len(parts[1]), id1)
	}

	// Different titles yield different hash suffixes
	if strings.Split(id1, "_")[1] == strings.Split(id2, "_")[1] {
		t.Error("Different titles produced the same hash suffix")
	}
}

func TestPackageFilename(t *testing.T) {
	tests := []struct {
		name     string
		songName string
		ext      string
		want     string
	}{
		{"simple", "Volver", "apkg", "Volver.apkg"},
		{"spaces", "Gracias a la Vida", "apkg", "Gracias_a_la_Vida.apkg"},
		{"whitespace runs", "Gracias  a\tla Vida", "apkg", "Gracias_a_la_Vida.apkg"},
		{"surrounding whitespace", "  Volver  ", "csv", "Volver.csv"},
		{"empty", "", "apkg", "songdeck.apkg"},
		{"only whitespace", " \t ", "apkg", "songdeck.apkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackageFilename(tt.songName, tt.ext); got != tt.want {
				t.Errorf("PackageFilename(%q, %q) = %q, want %q", tt.songName, tt.ext, got, tt.want)
			}
		})
	}
}
