package model

import (
	"regexp"
	"strconv"
	"strings"
)

// Album represents one album being assembled on disk.
//
// Album carries the release metadata used for ID3 tagging and file
// naming, plus the computed output directory every track file is
// written into.
//
// The directory is computed when creating an album via NewAlbum, using
// placeholders like {artist}, {album} and {year}.
//
// Example:
//
//	cfg := &PathConfig{OutputPath: "output/{artist} - {album} ({year})"}
//	album := NewAlbum("Pink Floyd", "The Wall", 1979, sourceURL, cfg)
//	// album.Path = "output/Pink Floyd - The Wall (1979)"
type Album struct {
	// Artist is the album artist name.
	Artist string

	// Title is the album title.
	Title string

	// Year is the release year.
	Year int

	// SourceURL is the video the album audio comes from.
	SourceURL string

	// Tracks contains all tracks in this album, in track order.
	Tracks []*Track

	// Path is the computed directory the track files are written into.
	// Set by NewAlbum based on PathConfig.OutputPath.
	Path string
}

// NewAlbum creates a new Album with its output directory computed from
// the configured template.
//
// The template supports these placeholders:
//   - {artist} - Artist name
//   - {album} - Album title
//   - {year} - Release year
//
// Placeholder values have invalid filename characters replaced with
// underscores, so a slash in an album title can never introduce an
// extra directory level. The path is truncated if it exceeds Windows
// path length limits (248 for folders).
func NewAlbum(artist, title string, year int, sourceURL string, cfg *PathConfig) *Album {
	album := &Album{
		Artist:    artist,
		Title:     title,
		Year:      year,
		SourceURL: sourceURL,
	}

	album.Path = album.parseFolderPath(cfg)

	return album
}

// PathConfig holds path formatting settings for albums.
//
// The OutputPath template is replaced with actual values to produce the
// album directory:
//
//	cfg := &PathConfig{OutputPath: "output/{artist} - {album} ({year})"}
type PathConfig struct {
	// OutputPath is the directory template albums are written under.
	// Example: "output/{artist} - {album} ({year})"
	OutputPath string
}

// parseFolderPath computes the album folder path from the config template.
func (a *Album) parseFolderPath(cfg *PathConfig) string {
	path := cfg.OutputPath
	path = strings.ReplaceAll(path, "{year}", sanitizeFileName(strconv.Itoa(a.Year)))
	path = strings.ReplaceAll(path, "{artist}", sanitizeFileName(a.Artist))
	path = strings.ReplaceAll(path, "{album}", sanitizeFileName(a.Title))

	// Limit path length for cross-platform compatibility (Windows MAX_PATH)
	if len(path) >= 248 {
		path = path[:247]
	}

	return path
}

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
