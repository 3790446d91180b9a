package model

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"file\"with\"quotes.mp3", "file_with_quotes.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlbum_PathComputation(t *testing.T) {
	cfg := &PathConfig{OutputPath: "output/{artist} - {album} ({year})"}

	album := NewAlbum("Test Artist", "Test Album", 2024, "https://example.com/watch?v=x", cfg)

	if album.Path != "output/Test Artist - Test Album (2024)" {
		t.Errorf("Album.Path = %q, want %q", album.Path, "output/Test Artist - Test Album (2024)")
	}
}

func TestAlbum_MetadataCannotEscapeOutputDir(t *testing.T) {
	cfg := &PathConfig{OutputPath: "output/{artist} - {album} ({year})"}

	album := NewAlbum("../evil", "Album/With/Slashes", 2024, "", cfg)

	if strings.Contains(album.Path[len("output/"):], "/") {
		t.Errorf("placeholder values introduced directory levels: %q", album.Path)
	}
	if album.Path != "output/.._evil - Album_With_Slashes (2024)" {
		t.Errorf("Album.Path = %q", album.Path)
	}
}

func TestTrack_PathComputation(t *testing.T) {
	albumCfg := &PathConfig{OutputPath: "output/{artist} - {album} ({year})"}
	trackCfg := &TrackConfig{FileNameFormat: "{tracknum} - {title}.mp3"}

	album := NewAlbum("Artist", "Album", 2024, "", albumCfg)
	track := NewTrack(album, 1, "Track Title", trackCfg)

	expectedPath := "output/Artist - Album (2024)/01 - Track Title.mp3"
	if track.Path != expectedPath {
		t.Errorf("Track.Path = %q, want %q", track.Path, expectedPath)
	}
}

func TestTrack_TitleWithSlashStaysFlat(t *testing.T) {
	albumCfg := &PathConfig{OutputPath: "output/{artist} - {album} ({year})"}
	trackCfg := &TrackConfig{FileNameFormat: "{tracknum} - {title}.mp3"}

	album := NewAlbum("A", "B", 2024, "", albumCfg)
	track := NewTrack(album, 3, "Song/Title", trackCfg)

	expectedPath := "output/A - B (2024)/03 - Song_Title.mp3"
	if track.Path != expectedPath {
		t.Errorf("Track.Path = %q, want %q", track.Path, expectedPath)
	}
}

func TestTrack_FileNamePlaceholders(t *testing.T) {
	albumCfg := &PathConfig{OutputPath: "out"}
	trackCfg := &TrackConfig{FileNameFormat: "{artist} - {album} ({year}) - {tracknum} {title}.mp3"}

	album := NewAlbum("Artist", "Album", 1999, "", albumCfg)
	track := NewTrack(album, 12, "Title", trackCfg)

	expectedPath := "out/Artist - Album (1999) - 12 Title.mp3"
	if track.Path != expectedPath {
		t.Errorf("Track.Path = %q, want %q", track.Path, expectedPath)
	}
}
