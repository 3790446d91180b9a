// Package model defines the output-side data structures shared across
// the albumsplit application.
//
// # Album
//
// Album represents one album being assembled on disk, with its computed
// output directory:
//
//	album := model.NewAlbum("Artist", "Title", 2024, sourceURL, pathConfig)
//	fmt.Println(album.Path) // Where track files are written
//
// # Track
//
// Track represents a single produced track file:
//
//	track := model.NewTrack(album, 1, "Song Title", trackConfig)
//	fmt.Println(track.Path) // Full path the track is written to
//
// # Path Configuration
//
// PathConfig and TrackConfig control how paths are computed using
// placeholders:
//
//	pathCfg := &model.PathConfig{OutputPath: "output/{artist} - {album} ({year})"}
//	trackCfg := &model.TrackConfig{FileNameFormat: "{tracknum} - {title}.mp3"}
//
// Available placeholders: {artist}, {album}, {title}, {tracknum}, {year}.
// Placeholder values are sanitized so metadata can never escape the
// output directory or produce invalid filenames.
package model
