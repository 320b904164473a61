package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveSongs moves the songs directory to an archive with timestamp
func ArchiveSongs(songsDir string) error {
	// Check if songs directory exists
	if _, err := os.Stat(songsDir); os.IsNotExist(err) {
		return fmt.Errorf("songs directory does not exist: %s", songsDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(songsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("songs-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("songs-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename songs directory to archive
	if err := os.Rename(songsDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive songs directory: %w", err)
	}

	fmt.Printf("Songs directory archived to: %s\n", archivePath)
	return nil
}
