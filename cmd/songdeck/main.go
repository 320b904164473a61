package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/songdeck/internal/archive"
	"codeberg.org/snonux/songdeck/internal/cli"
	"codeberg.org/snonux/songdeck/internal/processor"
	"codeberg.org/snonux/songdeck/internal/speech"
	"codeberg.org/snonux/songdeck/internal/voicelist"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := context.Background()

	// Handle --archive flag
	if flags.Archive {
		home, _ := os.UserHomeDir()
		songsDir := filepath.Join(home, ".local", "state", "songdeck", "songs")
		if err := archive.ArchiveSongs(songsDir); err != nil {
			return fmt.Errorf("failed to archive songs: %w", err)
		}
		return nil
	}

	// Handle --list-voices flag
	if flags.ListVoices != "" {
		config := speech.DefaultConfig()
		config.Provider = flags.Provider
		config.OpenAIKey = cli.GetOpenAIKey()
		config.GeminiKey = cli.GetGeminiKey()
		catalog, err := speech.NewCatalog(config)
		if err != nil {
			return err
		}
		lister := voicelist.NewLister(catalog, os.Stdout)
		return lister.ListVoices(ctx, flags.ListVoices)
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle batch processing
	if flags.BatchFile != "" {
		// Process batch manifest
		if err := proc.ProcessBatch(ctx); err != nil {
			return err
		}
	} else if len(args) > 0 {
		// Process single song
		if err := proc.ProcessSong(ctx, args[0], flags.LyricsFile); err != nil {
			return err
		}
	} else {
		return cmd.Help()
	}

	fmt.Printf("\nDone! Materials saved to: %s\n", flags.OutputDir)
	return nil
}
