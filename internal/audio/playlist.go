package audio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tmarsk/albumsplit/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
type PlaylistFormat int

const (
	// FormatNone disables playlist generation.
	FormatNone PlaylistFormat = iota

	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	// INI-style format with file, title, and length info.
	FormatPLS
)

// ParsePlaylistFormat maps a settings value to a PlaylistFormat.
//
// Recognized values (case-insensitive): "none", "", "m3u", "pls".
func ParsePlaylistFormat(s string) (PlaylistFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FormatNone, nil
	case "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	default:
		return FormatNone, fmt.Errorf("unknown playlist format %q", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f PlaylistFormat) Ext() string {
	switch f {
	case FormatM3U:
		return ".m3u"
	case FormatPLS:
		return ".pls"
	default:
		return ""
	}
}

// PlaylistCreator generates playlist files for a split album.
//
// PlaylistCreator takes the album and the tracks that actually made it
// to disk, and renders a playlist referencing them in order. The output
// is a string that can be written to a file next to the tracks.
//
// Example:
//
//	// Create M3U playlist with extended info
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(album, album.Tracks)
//	os.WriteFile(filepath.Join(album.Path, "playlist.m3u"), []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:180,Artist - Song Title
//	// 01 - Song Title.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist generates playlist content for the given tracks.
//
// Tracks are listed in the order given; pass only the tracks that exist
// on disk so the playlist never points at files a failed extraction
// left missing. Paths in the playlist are relative (just the filename),
// assuming the playlist file sits in the same directory as the tracks.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album, tracks []*model.Track) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(tracks)
	default:
		return p.createM3U(album, tracks)
	}
}

// createM3U generates an M3U playlist.
//
// Standard M3U format:
//
//	filename1.mp3
//	filename2.mp3
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(album *model.Album, tracks []*model.Track) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, track := range tracks {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s - %s\n", playSeconds(track), album.Artist, track.Title))
		}
		sb.WriteString(filepath.Base(track.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Song Title
//	Length1=180
//	NumberOfEntries=2
//	Version=2
func (p *PlaylistCreator) createPLS(tracks []*model.Track) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, track := range tracks {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(track.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, track.Title))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, playSeconds(track)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(tracks)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// playSeconds rounds a track's play time to whole seconds, the unit both
// playlist formats use. Tracks whose length was never resolved report 0,
// which players treat as "unknown".
func playSeconds(track *model.Track) int {
	return int(track.Length.Round(time.Second) / time.Second)
}
