package media

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/floostack/transcoder/ffmpeg"
	mp3lib "github.com/tcolgate/mp3"
)

// ProbeError reports that a downloaded asset's duration could not be
// measured. The run cannot continue past it: without the total length
// the final track has no end.
type ProbeError struct {
	// Path is the asset that could not be measured.
	Path string

	// Err is the underlying ffprobe failure.
	Err error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe duration of %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Prober measures the play length of downloaded media with ffprobe.
//
// For MP3 assets a pure-Go frame scan acts as a fallback, so a missing
// or broken ffprobe does not stop the pipeline on its own.
type Prober struct {
	// FfmpegPath is the ffmpeg binary name or path.
	FfmpegPath string

	// FfprobePath is the ffprobe binary name or path.
	FfprobePath string
}

// NewProber creates a Prober using the given binaries. Empty paths mean
// "ffmpeg" and "ffprobe" from $PATH.
func NewProber(ffmpegPath, ffprobePath string) *Prober {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Prober{FfmpegPath: ffmpegPath, FfprobePath: ffprobePath}
}

// Duration reports how long the media at path plays for.
func (p *Prober) Duration(path string) (time.Duration, error) {
	d, probeErr := p.ffprobeDuration(path)
	if probeErr == nil {
		return d, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if d, err := mp3FrameDuration(path); err == nil {
			slog.Debug("ffprobe failed, measured duration by frame scan",
				"path", path, "probe_error", probeErr)
			return d, nil
		}
	}

	return 0, &ProbeError{Path: path, Err: probeErr}
}

// ffprobeDuration asks ffprobe for the container-level duration.
func (p *Prober) ffprobeDuration(path string) (time.Duration, error) {
	trans := ffmpeg.New(&ffmpeg.Config{
		FfmpegBinPath:  p.FfmpegPath,
		FfprobeBinPath: p.FfprobePath,
	}).Input(path)

	meta, err := trans.GetMetadata()
	if err != nil {
		return 0, err
	}

	return parseProbeDuration(meta.GetFormat().GetDuration())
}

// parseProbeDuration converts ffprobe's decimal-seconds duration string
// (e.g. "754.123456") into a time.Duration.
func parseProbeDuration(s string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe duration %q: %w", s, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// mp3FrameDuration sums the play time of every MPEG frame in the file.
// Slower than ffprobe but needs no external tool.
func mp3FrameDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var total time.Duration
	dec := mp3lib.NewDecoder(f)
	var frame mp3lib.Frame
	skipped := 0
	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		total += frame.Duration()
	}

	return total, nil
}
