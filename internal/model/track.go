package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Track represents a single track within an album.
//
// Track carries what tagging and file naming need: the 1-based track
// number, the title, and the computed file path under the album
// directory. Cut offsets stay with the segment plan; a Track only
// describes the artifact being produced.
//
// Example:
//
//	cfg := &TrackConfig{FileNameFormat: "{tracknum} - {title}.mp3"}
//	track := NewTrack(album, 1, "Song Title", cfg)
//	// track.Path = "output/Artist - Album (2024)/01 - Song Title.mp3"
type Track struct {
	// Album is a reference to the parent album.
	Album *Album

	// Number is the track number (1-indexed).
	Number int

	// Title is the track title.
	Title string

	// Path is the computed file path the track is written to.
	// Includes the full path and filename with extension.
	Path string

	// Length is the play time of the produced file. It is resolved while
	// cutting, once the source duration is known, and is zero before that.
	Length time.Duration
}

// TrackConfig holds track path formatting settings.
//
// The FileNameFormat supports placeholders that are replaced with actual values:
//   - {tracknum} - Track number (2 digits, zero-padded)
//   - {title} - Track title
//   - {artist} - Artist name (from album)
//   - {album} - Album title
//   - {year} - Release year
//
// Example:
//
//	cfg := &TrackConfig{
//	    FileNameFormat: "{tracknum} {artist} - {title}.mp3",
//	}
//	// Results in filenames like "01 Pink Floyd - In the Flesh_.mp3"
type TrackConfig struct {
	// FileNameFormat is the template for track filenames.
	// Must include the file extension (typically ".mp3").
	FileNameFormat string
}

// NewTrack creates a new Track with computed path.
//
// The file path is computed from the album's path and the configured
// filename format. Invalid filename characters in placeholder values
// are replaced with underscores, so a title like "AC/DC Cover" yields a
// flat filename rather than a nested path.
func NewTrack(album *Album, number int, title string, cfg *TrackConfig) *Track {
	track := &Track{
		Album:  album,
		Number: number,
		Title:  title,
	}

	track.Path = track.parseFilePath(cfg)

	return track
}

// parseFilePath computes the full file path for this track.
func (t *Track) parseFilePath(cfg *TrackConfig) string {
	fileName := t.parseFileName(cfg)
	filePath := filepath.Join(t.Album.Path, fileName)

	// Limit total path length for Windows compatibility (MAX_PATH = 260)
	if len(filePath) >= 260 {
		ext := filepath.Ext(filePath)
		maxLen := 11 - len(ext) // Leave room for path separator and extension
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(t.Album.Path, fileName[:maxLen]+ext)
		}
	}

	return filePath
}

// parseFileName computes the filename from the config template.
func (t *Track) parseFileName(cfg *TrackConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{year}", fmt.Sprintf("%d", t.Album.Year))
	fileName = strings.ReplaceAll(fileName, "{album}", t.Album.Title)
	fileName = strings.ReplaceAll(fileName, "{artist}", t.Album.Artist)
	fileName = strings.ReplaceAll(fileName, "{title}", t.Title)
	fileName = strings.ReplaceAll(fileName, "{tracknum}", fmt.Sprintf("%02d", t.Number))
	return sanitizeFileName(fileName)
}
