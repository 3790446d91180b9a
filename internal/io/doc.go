// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Directory creation
//   - File existence checks
//   - Thumbnail-to-cover-art conversion
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("output/Artist - Album (2024)")
//
//	// Check whether a produced track is already on disk
//	if ioutils.FileExists(track.Path) { ... }
//
// # Cover Art
//
// The ImageService turns downloaded video thumbnails (WebP, JPEG, PNG)
// into JPEG cover art sized for ID3 embedding:
//
//	svc := ioutils.NewImageService()
//	cover, err := svc.PrepareCover(thumbnailBytes, 1000)
package ioutils
