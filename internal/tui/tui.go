// Package tui provides a Bubble Tea terminal user interface for albumsplit.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmarsk/albumsplit/internal/albumfile"
	"github.com/tmarsk/albumsplit/internal/config"
	"github.com/tmarsk/albumsplit/internal/pipeline"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// How many tracklist entries the confirm screen previews.
const previewTracks = 12

// State represents the current UI state.
type State int

const (
	StateReady State = iota
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	err      error

	// The parsed album file and its cut plan.
	album    *albumfile.Album
	segments []albumfile.Segment

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Pipeline references
	manager *pipeline.Manager
	summary *pipeline.Summary
	events  chan pipeline.ProgressEvent

	// Run progress
	doneTracks  int32
	totalTracks int32
	stage       string

	// Options
	overwrite bool
	keepAudio bool
	coverArt  bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model for the given album and plan.
func NewModel(album *albumfile.Album, segments []albumfile.Segment, settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateReady,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		album:     album,
		segments:  segments,
		logs:      make([]LogEntry, 0),
		events:    make(chan pipeline.ProgressEvent, 64),
		ctx:       ctx,
		cancel:    cancel,
		overwrite: settings.OverwriteExisting,
		keepAudio: settings.KeepSourceAudio,
		coverArt:  settings.EmbedCoverArt,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg carries one pipeline event into the log pane.
	ProgressMsg struct {
		Event pipeline.ProgressEvent
	}

	// RunDoneMsg is sent when the split finishes.
	RunDoneMsg struct {
		Summary *pipeline.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateReady {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateReady {
				m.state = StateRunning
				return m, tea.Batch(m.startRun(), m.listenEvents(), m.tickProgress(), m.spinner.Tick)
			}

		case "o":
			if m.state == StateReady {
				m.overwrite = !m.overwrite
			}

		case "k":
			if m.state == StateReady {
				m.keepAudio = !m.keepAudio
			}

		case "a":
			if m.state == StateReady {
				m.coverArt = !m.coverArt
			}

		case "v":
			if m.state == StateReady {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another run, e.g. after fixing the cause
				// of a partial failure.
				m.state = StateReady
				m.logs = nil
				m.err = nil
				m.summary = nil
				m.manager = nil
				m.doneTracks = 0
				m.totalTracks = 0
				m.stage = ""
				m.events = make(chan pipeline.ProgressEvent, 64)
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level != pipeline.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.listenEvents())

	case RunDoneMsg:
		m.summary = msg.Summary
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateRunning {
			done, total, stage := m.manager.GetProgress()
			m.doneTracks = done
			m.totalTracks = total
			m.stage = stage

			var percent float64
			if total > 0 {
				percent = float64(done) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startRun builds the manager and kicks off the split in the background.
func (m *Model) startRun() tea.Cmd {
	// Apply the toggles to a copy so a reset starts from the file again.
	settings := *m.settings
	settings.OverwriteExisting = m.overwrite
	settings.KeepSourceAudio = m.keepAudio
	settings.EmbedCoverArt = m.coverArt

	events := m.events
	manager := pipeline.NewManager(&settings, func(event pipeline.ProgressEvent) {
		// Never block the pipeline on a sluggish UI.
		select {
		case events <- event:
		default:
		}
	})
	m.manager = manager

	ctx, album, segments := m.ctx, m.album, m.segments
	return func() tea.Msg {
		summary, err := manager.Run(ctx, album, segments)
		return RunDoneMsg{Summary: summary, Err: err}
	}
}

// listenEvents waits for the next pipeline event.
func (m Model) listenEvents() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Album Split"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Cut one album video into tagged tracks"))
	b.WriteString("\n\n")

	switch m.state {
	case StateReady:
		b.WriteString(m.viewReady())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewReady() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s - %s (%d)", m.album.Artist, m.album.Title, m.album.Year)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.album.URL))
	b.WriteString("\n\n")

	shown := len(m.segments)
	if shown > previewTracks {
		shown = previewTracks
	}
	for _, seg := range m.segments[:shown] {
		b.WriteString(trackStyle.Render(fmt.Sprintf("  %2d. %6s  %s", seg.Index, albumfile.FormatTimestamp(seg.Start), seg.Title)))
		b.WriteString("\n")
	}
	if len(m.segments) > shown {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", len(m.segments)-shown)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Overwrite existing tracks (o)\n", checkbox(m.overwrite)))
	b.WriteString(fmt.Sprintf("  %s Keep downloaded audio (k)\n", checkbox(m.keepAudio)))
	b.WriteString(fmt.Sprintf("  %s Embed cover art (a)\n", checkbox(m.coverArt)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output path: %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(m.stageLine()))
	b.WriteString("\n\n")

	var percent float64
	if m.totalTracks > 0 {
		percent = float64(m.doneTracks) / float64(m.totalTracks)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Tracks: %d/%d", m.doneTracks, m.totalTracks)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) stageLine() string {
	switch m.stage {
	case pipeline.StageDownloading:
		return "Downloading album audio..."
	case pipeline.StageProbing:
		return "Measuring audio..."
	case pipeline.StageCutting:
		return "Cutting tracks..."
	default:
		return "Starting..."
	}
}

func (m Model) viewComplete() string {
	var b strings.Builder

	produced, skipped := 0, 0
	outputDir := ""
	var failures []pipeline.TrackFailure
	if m.summary != nil {
		produced = m.summary.Produced
		skipped = m.summary.Skipped
		outputDir = m.summary.OutputDir
		failures = m.summary.Failures
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Split Complete!\n\n"+
			"Tracks produced: %d\n"+
			"Skipped: %d\n"+
			"Output: %s",
		produced,
		skipped,
		outputDir,
	))
	b.WriteString(box)

	if len(failures) > 0 {
		b.WriteString("\n\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%d track(s) failed:", len(failures))))
		b.WriteString("\n")
		for _, failure := range failures {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  ✗ %02d %s: %v", failure.Number, failure.Title, failure.Err)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case pipeline.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateReady:
		return "enter: start • o: overwrite • k: keep audio • a: cover art • v: verbose • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(album *albumfile.Album, segments []albumfile.Segment, settings *config.Settings) error {
	p := tea.NewProgram(NewModel(album, segments, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
