package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"

	"github.com/tmarsk/albumsplit/internal/albumfile"
	"github.com/tmarsk/albumsplit/internal/config"
	"github.com/tmarsk/albumsplit/internal/tui"
)

var (
	albumFlag    = flag.String("album", "album.txt", "Path to the album file describing the video and tracklist")
	settingsFlag = flag.String("settings", "albumsplit.json", "Path to the settings file")
)

func main() {
	envflag.Parse()
	_ = slogflags.Logger(slogflags.WithSetDefault(true))

	settings, err := config.Load(*settingsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	album, err := albumfile.ParseFile(*albumFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	segments, err := albumfile.PlanSegments(album.Tracks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(album, segments, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
