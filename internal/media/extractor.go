package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/floostack/transcoder/ffmpeg"
)

// ExtractRequest describes one segment cut from a source asset.
type ExtractRequest struct {
	// AssetPath is the full-length source audio.
	AssetPath string

	// OutPath is the track file to produce. Its directory must already
	// exist; an existing file at the path is replaced.
	OutPath string

	// Start is the offset into the asset where the cut begins.
	Start time.Duration

	// Length is how much audio to take from Start.
	Length time.Duration
}

// FFmpeg cuts and re-encodes track segments with the ffmpeg command
// line tool, driven through the floostack transcoder bindings.
//
// Each cut is a fresh libmp3lame encode rather than a stream copy:
// frame boundaries almost never line up with tracklist timestamps, and
// a re-encode keeps the cut points exact.
type FFmpeg struct {
	// FfmpegPath is the ffmpeg binary name or path.
	FfmpegPath string

	// FfprobePath is the ffprobe binary name or path. The bindings
	// probe the input before transcoding, so this is needed too.
	FfprobePath string

	// Bitrate is the constant MP3 bitrate to encode at, e.g. "320k".
	Bitrate string

	// Verbose streams ffmpeg's stderr to the terminal instead of
	// discarding it. Useful when a cut keeps failing.
	Verbose bool
}

// NewFFmpeg creates an extractor using the given binaries and bitrate.
// Empty values fall back to "ffmpeg", "ffprobe" and "320k".
func NewFFmpeg(ffmpegPath, ffprobePath, bitrate string) *FFmpeg {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if bitrate == "" {
		bitrate = "320k"
	}
	return &FFmpeg{FfmpegPath: ffmpegPath, FfprobePath: ffprobePath, Bitrate: bitrate}
}

// Extract renders req.OutPath from [req.Start, req.Start+req.Length) of
// the asset, blocking until ffmpeg finishes. Cancelling the context
// kills the encode.
func (f *FFmpeg) Extract(ctx context.Context, req ExtractRequest) error {
	opts := f.cutOptions(req)
	slog.Debug("running ffmpeg",
		"input", req.AssetPath, "output", req.OutPath, "args", opts.GetStrArguments())

	trans := ffmpeg.New(&ffmpeg.Config{
		FfmpegBinPath:  f.FfmpegPath,
		FfprobeBinPath: f.FfprobePath,
		Verbose:        f.Verbose,
	}).
		Input(req.AssetPath).
		Output(req.OutPath).
		WithContext(&ctx)

	if _, err := trans.Start(opts); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}

	// The bindings can swallow a non-zero exit in some modes, so trust
	// the filesystem over the return value.
	if _, err := os.Stat(req.OutPath); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg produced no output at %s", req.OutPath)
	}

	return nil
}

// cutOptions maps a request onto ffmpeg flags: seek, take a fixed
// length, drop any video stream, and encode MP3 at the configured
// constant bitrate.
func (f *FFmpeg) cutOptions(req ExtractRequest) ffmpeg.Options {
	var (
		seek      = formatSeconds(req.Start)
		length    = formatSeconds(req.Length)
		codec     = "libmp3lame"
		bitrate   = f.Bitrate
		skipVideo = true
		overwrite = true
	)
	return ffmpeg.Options{
		SeekTime:     &seek,
		Duration:     &length,
		AudioCodec:   &codec,
		AudioBitrate: &bitrate,
		SkipVideo:    &skipVideo,
		Overwrite:    &overwrite,
	}
}

// formatSeconds renders a duration as decimal seconds the way ffmpeg
// expects time arguments ("185.000").
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
