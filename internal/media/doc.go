// Package media wraps the external tools albumsplit delegates media
// work to: yt-dlp for downloading audio, ffmpeg for cutting tracks out
// of it, and ffprobe (with a pure-Go fallback) for measuring duration.
//
// Nothing in this package retries, parallelizes or streams: each call
// runs one external process to completion and reports what it said.
// Network and codec behavior belong to the tools themselves.
//
// # Downloading
//
//	dl := media.NewYtDlp("yt-dlp")
//	asset, err := dl.Download(ctx, media.DownloadRequest{
//	    URL:        "https://www.youtube.com/watch?v=...",
//	    StagingDir: "output/.staging",
//	    Thumbnail:  true,
//	})
//	// asset.AudioPath is the full-length MP3; asset.ThumbnailPath the
//	// video thumbnail, when one was written
//
// On failure the returned *DownloadError carries the tool's combined
// output verbatim, since that text is the only useful diagnostic.
//
// # Measuring
//
//	prober := media.NewProber("ffmpeg", "ffprobe")
//	total, err := prober.Duration(asset.AudioPath)
//
// # Cutting
//
//	ex := media.NewFFmpeg("ffmpeg", "ffprobe", "320k")
//	err := ex.Extract(ctx, media.ExtractRequest{
//	    AssetPath: asset.AudioPath,
//	    OutPath:   "output/A - B (2024)/01 - One.mp3",
//	    Start:     0,
//	    Length:    3 * time.Minute,
//	})
package media
