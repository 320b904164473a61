package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []SongEntry
		wantErr     bool
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "songs with lyrics files",
			fileContent: `Gracias a la Vida = gracias.txt
Ne me quitte pas = ne_me_quitte_pas.txt`,
			want: []SongEntry{
				{Title: "Gracias a la Vida", LyricsFile: "gracias.txt"},
				{Title: "Ne me quitte pas", LyricsFile: "ne_me_quitte_pas.txt"},
			},
		},
		{
			name: "comments and blank lines",
			fileContent: `# Spanish songs
Gracias a la Vida = gracias.txt

# French songs
Ne me quitte pas = ne_me_quitte_pas.txt
`,
			want: []SongEntry{
				{Title: "Gracias a la Vida", LyricsFile: "gracias.txt"},
				{Title: "Ne me quitte pas", LyricsFile: "ne_me_quitte_pas.txt"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "Gracias a la Vida = gracias.txt\r\nVolver = volver.txt",
			want: []SongEntry{
				{Title: "Gracias a la Vida", LyricsFile: "gracias.txt"},
				{Title: "Volver", LyricsFile: "volver.txt"},
			},
		},
		{
			name:        "surrounding whitespace trimmed",
			fileContent: "   Gracias a la Vida   =   gracias.txt   ",
			want: []SongEntry{
				{Title: "Gracias a la Vida", LyricsFile: "gracias.txt"},
			},
		},
		{
			name:        "missing separator",
			fileContent: "Gracias a la Vida",
			wantErr:     true,
		},
		{
			name:        "empty title",
			fileContent: "= gracias.txt",
			wantErr:     true,
		},
		{
			name:        "empty lyrics file",
			fileContent: "Gracias a la Vida =",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp file
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "test.txt")
			err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644)
			if err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadBatchFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix line endings",
			input: "line1\nline2\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "windows line endings",
			input: "line1\r\nline2\r\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "mixed line endings",
			input: "line1\nline2\r\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single line no ending",
			input: "single line",
			want:  []string{"single line"},
		},
		{
			name:  "trailing newline",
			input: "line1\nline2\n",
			want:  []string{"line1", "line2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no whitespace",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "leading spaces",
			input: "   hello",
			want:  "hello",
		},
		{
			name:  "trailing spaces",
			input: "hello   ",
			want:  "hello",
		},
		{
			name:  "both sides",
			input: "   hello   ",
			want:  "hello",
		},
		{
			name:  "tabs and spaces",
			input: "\t  hello  \t",
			want:  "hello",
		},
		{
			name:  "all whitespace types",
			input: " \t\n\rhello \t\n\r",
			want:  "hello",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n\r   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimSpace(tt.input)
			if got != tt.want {
				t.Errorf("trimSpace() = %q, want %q", got, tt.want)
			}
		})
	}
}
