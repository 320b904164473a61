package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/songdeck/internal"
	"codeberg.org/snonux/songdeck/internal/analysis"
	"codeberg.org/snonux/songdeck/internal/anki"
	"codeberg.org/snonux/songdeck/internal/batch"
	"codeberg.org/snonux/songdeck/internal/cli"
	"codeberg.org/snonux/songdeck/internal/orchestrator"
	"codeberg.org/snonux/songdeck/internal/speech"
	"codeberg.org/snonux/songdeck/internal/voice"
)

// Processor handles the main song processing logic
type Processor struct {
	flags    *cli.Flags
	analyzer *analysis.Analyzer
	exporter *anki.Exporter

	// synth is built lazily from flags unless already set
	synth speech.Synthesizer
}

// NewProcessor creates a new song processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:    flags,
		analyzer: analysis.NewAnalyzer(cli.GetOpenAIKey()),
		exporter: anki.NewExporter(),
	}
}

// ProcessBatch processes multiple songs from a batch manifest
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Track statistics
	skippedCount := 0
	processedCount := 0
	errorCount := 0

	// Process each entry
	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Title)

		if p.isSongFullyProcessed(entry.Title) {
			fmt.Printf("  Skipping '%s': already fully processed\n", entry.Title)
			skippedCount++
			continue
		}

		if err := p.ProcessSong(ctx, entry.Title, entry.LyricsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Title, err)
			errorCount++
			// Continue with next song
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total songs: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	fmt.Printf("Skipped (already complete): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	return nil
}

// ProcessSong runs the full pipeline for one song: analysis, per-line
// audio and package export
func (p *Processor) ProcessSong(ctx context.Context, songTitle, lyricsFile string) error {
	if songTitle == "" {
		return fmt.Errorf("song title is required")
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	songDir := p.findOrCreateSongDirectory(songTitle)

	a, err := p.loadOrAnalyze(ctx, songTitle, lyricsFile, songDir)
	if err != nil {
		return err
	}

	// Generate per-line audio
	if !p.flags.SkipAudio {
		fmt.Printf("  Generating audio...\n")
		if err := p.generateAudio(ctx, a, songDir); err != nil {
			return fmt.Errorf("audio generation failed: %w", err)
		}

		// Persist audio references alongside the analysis
		if err := p.saveAnalysis(a, songDir); err != nil {
			fmt.Printf("  Warning: failed to save analysis: %v\n", err)
		}
	}

	// Export the package
	if p.flags.CSV {
		pkg := p.exporter.Assemble(a)
		paths, err := anki.WriteCSV(pkg, p.flags.OutputDir)
		if err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
		for _, path := range paths {
			fmt.Printf("  Wrote %s\n", path)
		}
	} else {
		path, err := p.exporter.Export(a, p.flags.OutputDir)
		if err != nil {
			return fmt.Errorf("package export failed: %w", err)
		}
		fmt.Printf("  Wrote %s\n", path)
	}

	return nil
}

// loadOrAnalyze reuses a saved analysis from an earlier run or requests
// a fresh one from the remote analyzer
func (p *Processor) loadOrAnalyze(ctx context.Context, songTitle, lyricsFile, songDir string) (*analysis.LyricsAnalysis, error) {
	analysisFile := filepath.Join(songDir, "analysis.json")
	if data, err := os.ReadFile(analysisFile); err == nil {
		a, err := analysis.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("saved analysis is unusable: %w", err)
		}
		fmt.Printf("  Reusing saved analysis from %s\n", analysisFile)
		return a, nil
	}

	if lyricsFile == "" {
		return nil, fmt.Errorf("lyrics file is required (--lyrics)")
	}
	lyrics, err := os.ReadFile(lyricsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read lyrics file: %w", err)
	}

	fmt.Printf("  Analyzing lyrics...\n")
	a, err := p.analyzer.Analyze(ctx, songTitle, string(lyrics))
	if err != nil {
		return nil, fmt.Errorf("lyrics analysis failed: %w", err)
	}
	fmt.Printf("  Language: %s, %d lines\n", a.LanguageCode, len(a.Lyrics))

	if err := p.saveAnalysis(a, songDir); err != nil {
		fmt.Printf("  Warning: failed to save analysis: %v\n", err)
	}

	return a, nil
}

// generateAudio synthesizes audio for every line via the orchestrator
func (p *Processor) generateAudio(ctx context.Context, a *analysis.LyricsAnalysis, songDir string) error {
	synth, err := p.synthesizer()
	if err != nil {
		return err
	}

	orch := orchestrator.New(synth, songDir)
	events := orch.Events()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			switch ev.Kind {
			case orchestrator.LineLoading:
				fmt.Printf("  Synthesizing line %d/%d...\n", ev.Index+1, len(a.Lyrics))
			case orchestrator.LineDone:
				fmt.Printf("    Saved %s\n", filepath.Base(ev.AudioRef))
			}
		}
	}()

	err = orch.Run(ctx, a)
	<-done
	return err
}

// synthesizer builds the configured speech provider wrapped in a
// circuit breaker
func (p *Processor) synthesizer() (speech.Synthesizer, error) {
	if p.synth != nil {
		return p.synth, nil
	}

	config := p.speechConfig()
	catalog, err := speech.NewCatalog(config)
	if err != nil {
		return nil, err
	}

	resolver := voice.NewResolver(catalog, nil)
	synth, err := speech.NewSynthesizer(config, resolver)
	if err != nil {
		return nil, err
	}

	p.synth = speech.NewBreakerSynthesizer(synth)
	return p.synth, nil
}

// speechConfig assembles the provider configuration from flags, with
// config file values filling in where flags kept their defaults
func (p *Processor) speechConfig() *speech.Config {
	config := speech.DefaultConfig()
	config.Provider = p.flags.Provider
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = p.flags.OpenAIModel
	config.OpenAISpeed = p.flags.OpenAISpeed
	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = p.flags.GeminiModel

	// Use config file values if not overridden by flags
	if p.flags.Provider == "openai" && viper.IsSet("speech.provider") {
		config.Provider = viper.GetString("speech.provider")
	}
	if p.flags.OpenAIModel == "gpt-4o-mini-tts" && viper.IsSet("speech.openai_model") {
		config.OpenAIModel = viper.GetString("speech.openai_model")
	}
	if p.flags.OpenAISpeed == 0.8 && viper.IsSet("speech.openai_speed") {
		config.OpenAISpeed = viper.GetFloat64("speech.openai_speed")
	}
	if p.flags.GeminiModel == "gemini-2.5-flash-preview-tts" && viper.IsSet("speech.gemini_model") {
		config.GeminiModel = viper.GetString("speech.gemini_model")
	}

	return config
}

// saveAnalysis writes analysis.json and context.txt to the song directory
func (p *Processor) saveAnalysis(a *analysis.LyricsAnalysis, songDir string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := os.WriteFile(filepath.Join(songDir, "analysis.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write analysis file: %w", err)
	}

	if a.GeneralContextInformation != "" {
		contextFile := filepath.Join(songDir, "context.txt")
		if err := os.WriteFile(contextFile, []byte(a.GeneralContextInformation+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write context file: %w", err)
		}
	}

	return nil
}

// Helper methods

func (p *Processor) findOrCreateSongDirectory(songTitle string) string {
	// Try to find existing directory first
	if dir := p.findSongDirectory(songTitle); dir != "" {
		return dir
	}

	// No existing directory, create new one with song ID
	songID := internal.GenerateSongID(songTitle)
	songDir := filepath.Join(p.flags.OutputDir, songID)
	if err := os.MkdirAll(songDir, 0755); err != nil {
		fmt.Printf("Warning: failed to create song directory: %v\n", err)
		return p.flags.OutputDir // Fallback to output directory
	}

	// Save song metadata
	metadataFile := filepath.Join(songDir, "song.txt")
	if err := os.WriteFile(metadataFile, []byte(songTitle), 0644); err != nil {
		fmt.Printf("Warning: failed to save song metadata: %v\n", err)
	}

	return songDir
}

func (p *Processor) findSongDirectory(songTitle string) string {
	entries, err := os.ReadDir(p.flags.OutputDir)
	if err != nil {
		return ""
	}

	// Look through all directories to find one with matching song.txt
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dirPath := filepath.Join(p.flags.OutputDir, entry.Name())
		songFile := filepath.Join(dirPath, "song.txt")

		// Read the song file to check if it matches
		if data, err := os.ReadFile(songFile); err == nil {
			storedTitle := strings.TrimSpace(string(data))
			if storedTitle == songTitle {
				return dirPath
			}
		}
	}

	return ""
}

// isSongFullyProcessed checks if a song has already been fully processed
func (p *Processor) isSongFullyProcessed(songTitle string) bool {
	songDir := p.findSongDirectory(songTitle)
	if songDir == "" {
		return false // No directory exists
	}

	// A saved analysis is required
	if _, err := os.Stat(filepath.Join(songDir, "analysis.json")); os.IsNotExist(err) {
		return false
	}

	// The exported package (or CSVs) must exist
	if p.flags.CSV {
		matches, _ := filepath.Glob(filepath.Join(p.flags.OutputDir, "*.csv"))
		return len(matches) > 0
	}
	packageFile := filepath.Join(p.flags.OutputDir, internal.PackageFilename(songTitle, "apkg"))
	_, err := os.Stat(packageFile)
	return err == nil
}
