package batch

import (
	"fmt"
	"os"
	"strings"
)

// SongEntry represents one song from a batch manifest
type SongEntry struct {
	Title      string
	LyricsFile string
}

// ReadBatchFile reads songs from a manifest file and returns SongEntry slice.
// Each line has the format:
//   Song Title = lyrics-file.txt
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]SongEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []SongEntry

	for i, line := range splitLines(string(content)) {
		line = trimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("batch file line %d: expected 'Song Title = lyrics-file', got %q", i+1, line)
		}

		title := strings.TrimSpace(parts[0])
		lyricsFile := strings.TrimSpace(parts[1])
		if title == "" || lyricsFile == "" {
			return nil, fmt.Errorf("batch file line %d: empty song title or lyrics file", i+1)
		}

		entries = append(entries, SongEntry{
			Title:      title,
			LyricsFile: lyricsFile,
		})
	}

	return entries, nil
}

// splitLines splits a string by newlines
func splitLines(s string) []string {
	var lines []string
	current := ""
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current)
			current = ""
		} else if r != '\r' {
			current += string(r)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// trimSpace trims whitespace from string
func trimSpace(s string) string {
	start := 0
	end := len(s)

	// Trim from start
	for start < end && isSpace(rune(s[start])) {
		start++
	}

	// Trim from end
	for end > start && isSpace(rune(s[end-1])) {
		end--
	}

	return s[start:end]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
