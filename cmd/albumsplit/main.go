package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"

	"github.com/tmarsk/albumsplit/internal/albumfile"
	"github.com/tmarsk/albumsplit/internal/config"
	ioutils "github.com/tmarsk/albumsplit/internal/io"
	"github.com/tmarsk/albumsplit/internal/pipeline"
)

// Command line flags. Each can also be set through an environment
// variable, e.g. ALBUM=live.txt albumsplit.
var (
	albumFlag     = flag.String("album", "album.txt", "Path to the album file describing the video and tracklist")
	settingsFlag  = flag.String("settings", "albumsplit.json", "Path to the settings file")
	outputFlag    = flag.String("output", "", "Output directory (overrides settings)")
	cookiesFlag   = flag.String("cookies", "", "Cookies file handed to yt-dlp (overrides settings)")
	overwriteFlag = flag.Bool("overwrite", false, "Re-cut tracks whose files already exist")
	keepFlag      = flag.Bool("keep-audio", false, "Keep the downloaded album audio after a full run")
	noArtFlag     = flag.Bool("no-art", false, "Skip cover art embedding")
	verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	dryRunFlag    = flag.Bool("dry-run", false, "Parse and plan without downloading")
)

func main() {
	envflag.Parse()
	logger := slogflags.Logger(slogflags.WithSetDefault(true))

	if !ioutils.FileExists(*albumFlag) {
		fmt.Println("Album Split - cut one album video into tagged MP3 tracks")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  albumsplit [options]")
		fmt.Println()
		fmt.Printf("No album file found at %q. Write one like:\n", *albumFlag)
		fmt.Println()
		fmt.Println("  url: https://www.youtube.com/watch?v=...")
		fmt.Println("  artist: Pink Floyd")
		fmt.Println("  album: Animals")
		fmt.Println("  year: 1977")
		fmt.Println()
		fmt.Println("  0:00 Pigs on the Wing 1")
		fmt.Println("  1:25 Dogs")
		fmt.Println()
		fmt.Println("For interactive mode, use: albumsplit-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load settings
	settings, err := config.Load(*settingsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputPath = filepath.Join(*outputFlag, "{artist} - {album} ({year})")
	}
	if *cookiesFlag != "" {
		settings.CookiesFile = *cookiesFlag
	}
	if *overwriteFlag {
		settings.OverwriteExisting = true
	}
	if *keepFlag {
		settings.KeepSourceAudio = true
	}
	if *noArtFlag {
		settings.EmbedCoverArt = false
	}

	logger.Debug("starting", "album", *albumFlag, "settings", *settingsFlag)

	album, err := albumfile.ParseFile(*albumFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	segments, err := albumfile.PlanSegments(album.Tracks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🎵 Album Split")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()
	fmt.Printf("%s - %s (%d), %d tracks\n", album.Artist, album.Title, album.Year, len(segments))

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not downloading]")
		printPlan(segments)
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := pipeline.NewManager(settings, func(event pipeline.ProgressEvent) {
		if event.Level == pipeline.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case pipeline.LevelError:
			prefix = "❌ "
		case pipeline.LevelWarning:
			prefix = "⚠️  "
		case pipeline.LevelSuccess:
			prefix = "✅ "
		case pipeline.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println()

	summary, err := manager.Run(ctx, album, segments)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nSplit cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Produced %d tracks (%d skipped) in %s\n", summary.Produced, summary.Skipped, summary.OutputDir)

	if len(summary.Failures) > 0 {
		fmt.Printf("⚠️  %d track(s) failed:\n", len(summary.Failures))
		for _, failure := range summary.Failures {
			fmt.Printf("   %02d %s: %v\n", failure.Number, failure.Title, failure.Err)
		}
		os.Exit(1)
	}
}

// printPlan shows the cut windows a run would use.
func printPlan(segments []albumfile.Segment) {
	fmt.Println()
	for _, seg := range segments {
		end := "end"
		if !seg.OpenEnd {
			end = albumfile.FormatTimestamp(seg.End)
		}
		fmt.Printf("  %2d. %7s to %-7s %s\n", seg.Index, albumfile.FormatTimestamp(seg.Start), end, seg.Title)
	}
}
