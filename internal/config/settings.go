package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tmarsk/albumsplit/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Output layout
	OutputPath     string `json:"output_path"`
	FileNameFormat string `json:"file_name_format"`
	StagingPath    string `json:"staging_path"`

	// External tools
	YtDlpPath   string `json:"yt_dlp_path"`
	FfmpegPath  string `json:"ffmpeg_path"`
	FfprobePath string `json:"ffprobe_path"`

	// CookiesFile is handed to yt-dlp when the file exists, for videos
	// that need an authenticated session. The file itself is opaque to
	// albumsplit.
	CookiesFile string `json:"cookies_file"`

	// Audio encoding
	AudioBitrate string `json:"audio_bitrate"`

	// Behavior
	OverwriteExisting bool `json:"overwrite_existing"`
	KeepSourceAudio   bool `json:"keep_source_audio"`

	// Cover art
	EmbedCoverArt   bool `json:"embed_cover_art"`
	CoverArtMaxSize int  `json:"cover_art_max_size"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// PlaylistFormat selects the playlist file written next to the
	// tracks: "m3u", "pls" or "none".
	PlaylistFormat string `json:"playlist_format"`

	// M3UExtended adds #EXTINF duration/title lines to M3U playlists.
	M3UExtended bool `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
//
// Paths are relative to the working directory, matching the
// run-it-where-the-album-file-lives workflow: tracks end up under
// ./output, the downloaded source audio is staged in ./output/.staging,
// and a ./cookies.txt is picked up automatically when present.
func DefaultSettings() *Settings {
	return &Settings{
		OutputPath:     filepath.Join("output", "{artist} - {album} ({year})"),
		FileNameFormat: "{tracknum} - {title}.mp3",
		StagingPath:    filepath.Join("output", ".staging"),

		YtDlpPath:   "yt-dlp",
		FfmpegPath:  "ffmpeg",
		FfprobePath: "ffprobe",
		CookiesFile: "cookies.txt",

		AudioBitrate: "320k",

		OverwriteExisting: false,
		KeepSourceAudio:   false,

		EmbedCoverArt:   true,
		CoverArtMaxSize: 1000,

		ModifyTags: true,

		PlaylistFormat: "m3u",
		M3UExtended:    true,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool
// works with zero configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		OutputPath: s.OutputPath,
	}
}

// ToTrackConfig converts settings to TrackConfig.
func (s *Settings) ToTrackConfig() *model.TrackConfig {
	return &model.TrackConfig{
		FileNameFormat: s.FileNameFormat,
	}
}
