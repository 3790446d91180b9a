// Package config provides configuration management for albumsplit.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to PathConfig and TrackConfig for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Tracks go to output/{artist} - {album} ({year})
//	// yt-dlp/ffmpeg/ffprobe are found on PATH
//	// 320k MP3 encoding, cover art embedding enabled
//
// # Loading from File
//
//	settings, err := config.Load("albumsplit.json")
//	if err != nil {
//	    // Malformed file; a missing file just yields defaults
//	}
//
// # Saving Settings
//
//	settings.OutputPath = "/mnt/music/{artist}/{album}"
//	err := settings.Save("albumsplit.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Output directory and file naming templates
//   - External tool binary paths (yt-dlp, ffmpeg, ffprobe)
//   - Browser cookies forwarded to yt-dlp
//   - MP3 bitrate
//   - Overwrite and staging cleanup behavior
//   - Cover art embedding
//   - Playlist file generation
package config
