package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateSongID creates a unique ID for a song's working directory
// Format: epochMillis_md5(title)[:8]
func GenerateSongID(songTitle string) string {
	now := time.Now()
	epochMillis := now.UnixNano() / 1000000

	hash := md5.Sum([]byte(songTitle))
	hashStr := hex.EncodeToString(hash[:])[:8] // Use first 8 chars of MD5

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// PackageFilename derives the export filename from a song name by
// collapsing whitespace runs to underscores. Re-exports of the same
// song map to the same filename.
func PackageFilename(songName, ext string) string {
	name := strings.Join(strings.FieldsFunc(songName, unicode.IsSpace), "_")
	if name == "" {
		name = "songdeck"
	}
	return name + "." + ext
}
