package audio

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"
	"github.com/tmarsk/albumsplit/internal/model"
)

// TagConfig controls how ID3 tags are written to extracted tracks.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags:    true, // write artist/album/title/year/track
//	    ClearExisting: true, // drop whatever yt-dlp left behind first
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are written.
	ModifyTags bool

	// ClearExisting removes every frame already present in the file before
	// writing new ones. The source audio usually carries tags describing
	// the full-album video, which are wrong for the individual tracks.
	ClearExisting bool
}

// DefaultTagConfig returns the default tag configuration: existing frames
// are cleared and fresh ones written from the album metadata.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:    true,
		ClearExisting: true,
	}
}

// Tagger writes ID3 tags to MP3 files.
//
// Tagger uses the id3v2 library to modify MP3 file metadata including:
//   - Artist, Album, Title
//   - Track Number, Year
//   - Cover Art (attached picture)
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//
//	// After extracting a track
//	err := tagger.SaveTags(track, album, artworkBytes)
//	if err != nil {
//	    log.Printf("Failed to tag %s: %v", track.Path, err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the track's MP3 file.
//
// This method:
//  1. Opens the MP3 file produced by the extractor
//  2. Clears inherited frames if ClearExisting is set
//  3. Writes artist, album, title, year and track number from the album
//  4. Embeds cover art if artwork bytes are provided
//  5. Saves the modified tags to the file
//
// Parameters:
//   - track: The track being tagged (provides title, number, file path)
//   - album: The album (provides artist, title, year, track count)
//   - artwork: JPEG image bytes for cover art (nil to skip artwork)
//
// Returns an error if the file cannot be opened or saved.
func (t *Tagger) SaveTags(track *model.Track, album *model.Album, artwork []byte) error {
	tag, err := id3v2.Open(track.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open %s: %w", track.Path, err)
	}
	defer tag.Close()

	if t.config.ClearExisting {
		tag.DeleteAllFrames()
	}

	if t.config.ModifyTags {
		t.updateStringTags(tag, track, album)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags to %s: %w", track.Path, err)
	}
	return nil
}

// updateStringTags writes the text-based ID3 frames.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, track *model.Track, album *model.Album) {
	// Artist (TPE1)
	tag.SetArtist(album.Artist)

	// Album (TALB)
	tag.SetAlbum(album.Title)

	// Track Title (TIT2)
	tag.SetTitle(track.Title)

	// Year, both the ID3v2.3 frame (TYER) and its v2.4 successor (TDRC).
	// Players disagree on which one they read.
	year := strconv.Itoa(album.Year)
	tag.AddTextFrame("TYER", id3v2.EncodingUTF8, year)
	tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, year)

	// Track Number (TRCK), in "n/total" form so players can show both.
	trck := fmt.Sprintf("%d/%d", track.Number, len(album.Tracks))
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, trck)
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	// Add new artwork as front cover (APIC frame)
	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
