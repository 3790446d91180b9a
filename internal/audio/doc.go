// Package audio provides audio file manipulation services including
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(track, album, artworkBytes)
//
// The tagger supports:
//   - Artist, Album Title, Track Title
//   - Track Number, Year
//   - Cover Art (embedded in MP3)
//
// Extracted tracks inherit whatever metadata the source video carried,
// so the default configuration clears every existing frame before
// writing fresh ones.
//
// # Playlist Generation
//
// Generate a playlist for the tracks that made it to disk:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(album, album.Tracks)
//	os.WriteFile(filepath.Join(album.Path, "playlist.m3u"), []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
