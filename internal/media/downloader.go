package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// assetBaseName is the fixed name the downloaded audio (and its
// thumbnail) get inside the staging directory. A fixed name is what
// makes re-runs find and reuse an earlier download.
const assetBaseName = "full_audio"

// DownloadRequest describes one album download.
type DownloadRequest struct {
	// URL is the video to download audio from.
	URL string

	// StagingDir is the directory the asset is written into. It must
	// already exist.
	StagingDir string

	// CookiesFile, when non-empty, is passed to yt-dlp for videos that
	// need an authenticated session.
	CookiesFile string

	// Thumbnail asks for the video thumbnail alongside the audio, for
	// cover art embedding.
	Thumbnail bool
}

// Asset is the downloaded media on local disk.
type Asset struct {
	// AudioPath is the full-length MP3 holding the whole album.
	AudioPath string

	// ThumbnailPath is the video thumbnail image, or empty when none
	// was requested or written.
	ThumbnailPath string
}

// DownloadError reports a failed album download. It aborts the whole
// run: without the source audio there is nothing to split.
type DownloadError struct {
	// URL is the video that failed to download.
	URL string

	// Output is the downloader's combined stdout/stderr, passed through
	// verbatim. yt-dlp's own diagnostics are the only useful
	// explanation of a failure.
	Output string

	// Err is the underlying process error.
	Err error
}

func (e *DownloadError) Error() string {
	msg := fmt.Sprintf("download %s: %v", e.URL, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *DownloadError) Unwrap() error { return e.Err }

// YtDlp downloads a video's audio with the yt-dlp command line tool.
type YtDlp struct {
	// Path is the binary name or path to invoke, normally "yt-dlp".
	Path string
}

// NewYtDlp creates a downloader invoking the given binary. An empty
// path means "yt-dlp" from $PATH.
func NewYtDlp(path string) *YtDlp {
	if path == "" {
		path = "yt-dlp"
	}
	return &YtDlp{Path: path}
}

// Download fetches the audio for req.URL into req.StagingDir as a
// single MP3, invoking yt-dlp once. Playlists are never expanded; only
// the one video is downloaded.
//
// When the asset is already present from an earlier run the download is
// skipped, which makes a re-run after a partial failure cheap.
func (y *YtDlp) Download(ctx context.Context, req DownloadRequest) (*Asset, error) {
	audioPath := filepath.Join(req.StagingDir, assetBaseName+".mp3")
	if _, err := os.Stat(audioPath); err == nil {
		slog.Debug("reusing staged audio", "path", audioPath)
		return &Asset{AudioPath: audioPath, ThumbnailPath: findThumbnail(req.StagingDir)}, nil
	}

	args := y.buildArgs(req)
	slog.Debug("running yt-dlp", "binary", y.Path, "args", args)

	cmd := exec.CommandContext(ctx, y.Path, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &DownloadError{URL: req.URL, Output: string(out), Err: err}
	}

	if _, err := os.Stat(audioPath); err != nil {
		return nil, &DownloadError{URL: req.URL, Output: string(out),
			Err: fmt.Errorf("yt-dlp reported success but %s is missing", audioPath)}
	}

	return &Asset{AudioPath: audioPath, ThumbnailPath: findThumbnail(req.StagingDir)}, nil
}

// buildArgs assembles the yt-dlp invocation: extract best-quality audio,
// convert to MP3, write under a fixed name in the staging directory.
func (y *YtDlp) buildArgs(req DownloadRequest) []string {
	args := []string{
		"--no-playlist",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"--output", filepath.Join(req.StagingDir, assetBaseName+".%(ext)s"),
	}
	if req.CookiesFile != "" {
		args = append(args, "--cookies", req.CookiesFile)
	}
	if req.Thumbnail {
		args = append(args, "--write-thumbnail")
	}
	return append(args, req.URL)
}

// findThumbnail locates the thumbnail yt-dlp wrote next to the audio,
// whichever format the site served.
func findThumbnail(dir string) string {
	for _, ext := range []string{".webp", ".jpg", ".jpeg", ".png"} {
		path := filepath.Join(dir, assetBaseName+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
