package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tmarsk/albumsplit/internal/albumfile"
	"github.com/tmarsk/albumsplit/internal/audio"
	"github.com/tmarsk/albumsplit/internal/config"
	ioutils "github.com/tmarsk/albumsplit/internal/io"
	"github.com/tmarsk/albumsplit/internal/media"
	"github.com/tmarsk/albumsplit/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Stage names reported by GetProgress.
const (
	StageIdle        = "idle"
	StageDownloading = "downloading"
	StageProbing     = "probing"
	StageCutting     = "cutting"
	StageDone        = "done"
)

// Downloader fetches the album audio into the staging directory.
// Implemented by media.YtDlp.
type Downloader interface {
	Download(ctx context.Context, req media.DownloadRequest) (*media.Asset, error)
}

// Prober measures the play time of an audio file. Implemented by
// media.Prober.
type Prober interface {
	Duration(path string) (time.Duration, error)
}

// Extractor cuts one segment of the album audio into its own file.
// Implemented by media.FFmpeg.
type Extractor interface {
	Extract(ctx context.Context, req media.ExtractRequest) error
}

// Tagger writes ID3 tags to a produced track. Implemented by
// audio.Tagger.
type Tagger interface {
	SaveTags(track *model.Track, album *model.Album, artwork []byte) error
}

// CoverMaker turns a downloaded thumbnail into embeddable cover art.
// Implemented by ioutils.ImageService.
type CoverMaker interface {
	PrepareCover(data []byte, maxSize int) ([]byte, error)
}

// Summary reports what a run produced.
type Summary struct {
	// OutputDir is the album directory the tracks were written to.
	OutputDir string

	// Produced counts tracks cut and tagged by this run.
	Produced int

	// Skipped counts tracks left alone because their file already
	// existed.
	Skipped int

	// Failures lists the tracks that could not be produced, in album
	// order.
	Failures []TrackFailure
}

// Manager coordinates one album split.
type Manager struct {
	settings       *config.Settings
	downloader     Downloader
	prober         Prober
	extractor      Extractor
	tagger         Tagger
	covers         CoverMaker
	playlist       *audio.PlaylistCreator
	playlistFormat audio.PlaylistFormat

	doneTracks  int32
	totalTracks int32
	stage       string

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a Manager wired to the real collaborators: yt-dlp
// for downloading, ffmpeg/ffprobe for measuring and cutting, id3v2 for
// tagging.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	extractor := media.NewFFmpeg(settings.FfmpegPath, settings.FfprobePath, settings.AudioBitrate)
	extractor.Verbose = slog.Default().Enabled(context.Background(), slog.LevelDebug)

	playlistFormat, err := audio.ParsePlaylistFormat(settings.PlaylistFormat)
	if err != nil {
		slog.Warn("unknown playlist format, falling back to m3u", "value", settings.PlaylistFormat)
		playlistFormat = audio.FormatM3U
	}

	// Strip inherited frames only when rewriting them.
	tagCfg := &audio.TagConfig{
		ModifyTags:    settings.ModifyTags,
		ClearExisting: settings.ModifyTags,
	}

	return &Manager{
		settings:       settings,
		downloader:     media.NewYtDlp(settings.YtDlpPath),
		prober:         media.NewProber(settings.FfmpegPath, settings.FfprobePath),
		extractor:      extractor,
		tagger:         audio.NewTagger(tagCfg),
		covers:         ioutils.NewImageService(),
		playlist:       audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		playlistFormat: playlistFormat,
		stage:          StageIdle,
		onProgress:     onProgress,
	}
}

// Run executes one split: the album audio is downloaded once, measured,
// and cut into one tagged MP3 per segment, sequentially in track order.
//
// The returned error is non-nil only when the run aborted before any
// track could be produced (download or probe failure, cancellation).
// Per-track problems land in Summary.Failures instead.
func (m *Manager) Run(ctx context.Context, album *albumfile.Album, segments []albumfile.Segment) (*Summary, error) {
	atomic.StoreInt32(&m.totalTracks, int32(len(segments)))
	atomic.StoreInt32(&m.doneTracks, 0)

	target := m.buildAlbum(album)

	if err := ioutils.EnsureDir(target.Path); err != nil {
		return nil, fmt.Errorf("create album directory: %w", err)
	}
	if err := ioutils.EnsureDir(m.settings.StagingPath); err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}

	m.setStage(StageDownloading)
	asset, err := m.download(ctx, album.URL)
	if err != nil {
		return nil, err
	}

	m.setStage(StageProbing)
	total, err := m.prober.Duration(asset.AudioPath)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Source audio runs %s", albumfile.FormatTimestamp(total)), Level: LevelVerbose})

	artwork := m.prepareArtwork(asset)

	m.setStage(StageCutting)
	summary := &Summary{OutputDir: target.Path}
	var onDisk []*model.Track

	for i, seg := range segments {
		track := target.Tracks[i]

		skipped, err := m.produceTrack(ctx, track, target, seg, asset, total, artwork)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil {
			summary.Failures = append(summary.Failures, TrackFailure{Number: track.Number, Title: track.Title, Err: err})
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error producing %s: %v", track.Title, err), Level: LevelError})
			atomic.AddInt32(&m.doneTracks, 1)
			continue
		}

		onDisk = append(onDisk, track)
		if skipped {
			summary.Skipped++
		} else {
			summary.Produced++
			m.progress(ProgressEvent{Message: fmt.Sprintf("Cut %s (%s)", filepath.Base(track.Path), albumfile.FormatTimestamp(track.Length)), Level: LevelInfo})
		}
		atomic.AddInt32(&m.doneTracks, 1)
	}

	m.writePlaylist(target, onDisk)
	m.cleanupStaging(asset, len(summary.Failures) == 0)
	m.setStage(StageDone)

	if len(summary.Failures) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Split %d tracks into %s", len(segments), target.Path), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Finished with %d of %d tracks failed", len(summary.Failures), len(segments)), Level: LevelWarning})
	}

	return summary, nil
}

// GetProgress returns how many tracks have been handled so far, how
// many the plan holds, and the stage the run is in. Safe to call from
// another goroutine while Run is active.
func (m *Manager) GetProgress() (done, total int32, stage string) {
	m.mu.RLock()
	stage = m.stage
	m.mu.RUnlock()
	return atomic.LoadInt32(&m.doneTracks), atomic.LoadInt32(&m.totalTracks), stage
}

// buildAlbum maps the parsed album file onto the output model, fixing
// every track's path up front.
func (m *Manager) buildAlbum(album *albumfile.Album) *model.Album {
	target := model.NewAlbum(album.Artist, album.Title, album.Year, album.URL, m.settings.ToPathConfig())
	trackCfg := m.settings.ToTrackConfig()
	for i, entry := range album.Tracks {
		target.Tracks = append(target.Tracks, model.NewTrack(target, i+1, entry.Title, trackCfg))
	}
	return target
}

func (m *Manager) download(ctx context.Context, url string) (*media.Asset, error) {
	req := media.DownloadRequest{
		URL:        url,
		StagingDir: m.settings.StagingPath,
		Thumbnail:  m.settings.EmbedCoverArt,
	}

	if m.settings.CookiesFile != "" && ioutils.FileExists(m.settings.CookiesFile) {
		req.CookiesFile = m.settings.CookiesFile
		m.progress(ProgressEvent{Message: fmt.Sprintf("Using cookies from %s", m.settings.CookiesFile), Level: LevelVerbose})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloading audio: %s", url), Level: LevelInfo})
	asset, err := m.downloader.Download(ctx, req)
	if err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Audio staged at %s", asset.AudioPath), Level: LevelVerbose})
	return asset, nil
}

// prepareArtwork turns the downloaded thumbnail into cover art bytes.
// Cover art is decoration: any problem here downgrades to a warning and
// the split continues without it.
func (m *Manager) prepareArtwork(asset *media.Asset) []byte {
	if !m.settings.EmbedCoverArt {
		return nil
	}
	if asset.ThumbnailPath == "" {
		m.progress(ProgressEvent{Message: "No thumbnail to use as cover art", Level: LevelVerbose})
		return nil
	}

	data, err := os.ReadFile(asset.ThumbnailPath)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading thumbnail: %v", err), Level: LevelWarning})
		return nil
	}

	cover, err := m.covers.PrepareCover(data, m.settings.CoverArtMaxSize)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error preparing cover art: %v", err), Level: LevelWarning})
		return nil
	}
	return cover
}

// produceTrack cuts and tags a single track. It reports skipped=true
// when an existing file was left alone.
func (m *Manager) produceTrack(ctx context.Context, track *model.Track, album *model.Album, seg albumfile.Segment, asset *media.Asset, total time.Duration, artwork []byte) (skipped bool, err error) {
	if seg.Start >= total {
		return false, &ExtractionError{Number: track.Number, Title: track.Title,
			Err: fmt.Errorf("starts at %s but the source audio ends at %s",
				albumfile.FormatTimestamp(seg.Start), albumfile.FormatTimestamp(total))}
	}

	track.Length = seg.Length(total)

	if !m.settings.OverwriteExisting && ioutils.FileExists(track.Path) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(track.Path)), Level: LevelVerbose})
		return true, nil
	}

	req := media.ExtractRequest{
		AssetPath: asset.AudioPath,
		OutPath:   track.Path,
		Start:     seg.Start,
		Length:    track.Length,
	}
	if err := m.extractor.Extract(ctx, req); err != nil {
		return false, &ExtractionError{Number: track.Number, Title: track.Title, Err: err}
	}

	if m.settings.ModifyTags || artwork != nil {
		if err := m.tagger.SaveTags(track, album, artwork); err != nil {
			return false, &TaggingError{Number: track.Number, Title: track.Title, Err: err}
		}
	}

	return false, nil
}

func (m *Manager) writePlaylist(album *model.Album, tracks []*model.Track) {
	if m.playlistFormat == audio.FormatNone || len(tracks) == 0 {
		return
	}

	path := filepath.Join(album.Path, "playlist"+m.playlistFormat.Ext())
	content := m.playlist.CreatePlaylist(album, tracks)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created %s", filepath.Base(path)), Level: LevelVerbose})
}

// cleanupStaging removes the staged download. After a partial run the
// audio stays put so a re-run can cut the missing tracks without
// downloading again.
func (m *Manager) cleanupStaging(asset *media.Asset, fullSuccess bool) {
	if m.settings.KeepSourceAudio {
		return
	}
	if !fullSuccess {
		m.progress(ProgressEvent{Message: "Keeping staged audio for a re-run", Level: LevelVerbose})
		return
	}

	paths := []string{asset.AudioPath}
	if asset.ThumbnailPath != "" {
		paths = append(paths, asset.ThumbnailPath)
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error removing %s: %v", p, err), Level: LevelWarning})
		}
	}

	// The staging directory may hold downloads from other albums.
	_ = os.Remove(m.settings.StagingPath)
}

func (m *Manager) setStage(stage string) {
	m.mu.Lock()
	m.stage = stage
	m.mu.Unlock()
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
