package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYtDlp_BuildArgs(t *testing.T) {
	dl := NewYtDlp("")

	tests := []struct {
		name string
		req  DownloadRequest
		want []string
	}{
		{
			name: "plain download",
			req:  DownloadRequest{URL: "https://example.com/v", StagingDir: "stage"},
			want: []string{
				"--no-playlist",
				"--extract-audio",
				"--audio-format", "mp3",
				"--audio-quality", "0",
				"--output", filepath.Join("stage", "full_audio.%(ext)s"),
				"https://example.com/v",
			},
		},
		{
			name: "with cookies and thumbnail",
			req: DownloadRequest{
				URL:         "https://example.com/v",
				StagingDir:  "stage",
				CookiesFile: "cookies.txt",
				Thumbnail:   true,
			},
			want: []string{
				"--no-playlist",
				"--extract-audio",
				"--audio-format", "mp3",
				"--audio-quality", "0",
				"--output", filepath.Join("stage", "full_audio.%(ext)s"),
				"--cookies", "cookies.txt",
				"--write-thumbnail",
				"https://example.com/v",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dl.buildArgs(tt.req))
		})
	}
}

func TestYtDlp_ReusesStagedAudio(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "full_audio.mp3")
	require.NoError(t, os.WriteFile(audio, []byte("mp3"), 0644))

	// The binary does not exist; reuse must short-circuit before exec.
	dl := NewYtDlp(filepath.Join(dir, "no-such-yt-dlp"))
	asset, err := dl.Download(t.Context(), DownloadRequest{URL: "u", StagingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, audio, asset.AudioPath)
}

func TestYtDlp_MissingBinaryIsDownloadError(t *testing.T) {
	dir := t.TempDir()

	dl := NewYtDlp(filepath.Join(dir, "no-such-yt-dlp"))
	_, err := dl.Download(t.Context(), DownloadRequest{URL: "u", StagingDir: dir})
	require.Error(t, err)

	var derr *DownloadError
	require.True(t, errors.As(err, &derr), "want *DownloadError, got %T", err)
	assert.Equal(t, "u", derr.URL)
}

func TestFindThumbnail(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", findThumbnail(dir))

	want := filepath.Join(dir, "full_audio.webp")
	require.NoError(t, os.WriteFile(want, []byte("img"), 0644))
	assert.Equal(t, want, findThumbnail(dir))
}

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "754.500000", want: 754*time.Second + 500*time.Millisecond},
		{input: "180", want: 3 * time.Minute},
		{input: " 6.25\n", want: 6250 * time.Millisecond},
		{input: "N/A", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseProbeDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFFmpeg_CutOptions(t *testing.T) {
	ex := NewFFmpeg("", "", "")

	opts := ex.cutOptions(ExtractRequest{
		AssetPath: "in.mp3",
		OutPath:   "out.mp3",
		Start:     3 * time.Minute,
		Length:    2*time.Minute + 500*time.Millisecond,
	})

	require.NotNil(t, opts.SeekTime)
	assert.Equal(t, "180.000", *opts.SeekTime)
	require.NotNil(t, opts.Duration)
	assert.Equal(t, "120.500", *opts.Duration)
	require.NotNil(t, opts.AudioCodec)
	assert.Equal(t, "libmp3lame", *opts.AudioCodec)
	require.NotNil(t, opts.AudioBitrate)
	assert.Equal(t, "320k", *opts.AudioBitrate)
	require.NotNil(t, opts.SkipVideo)
	assert.True(t, *opts.SkipVideo)
	require.NotNil(t, opts.Overwrite)
	assert.True(t, *opts.Overwrite)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.000", formatSeconds(0))
	assert.Equal(t, "185.000", formatSeconds(3*time.Minute+5*time.Second))
	assert.Equal(t, "0.250", formatSeconds(250*time.Millisecond))
}
