// Package pipeline provides the orchestration logic for turning one
// album video into a directory of tagged MP3 tracks.
//
// # Manager
//
// The Manager coordinates the entire split:
//
//  1. Download the album audio once via yt-dlp
//  2. Measure the audio so the final track knows where to end
//  3. Cut each planned segment into its own MP3 via ffmpeg
//  4. Tag each file with ID3 metadata and cover art
//  5. Write a playlist for the produced tracks (optional)
//
// # Basic Usage
//
//	manager := pipeline.NewManager(settings, func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := manager.Run(ctx, album, segments)
//	if err != nil {
//	    log.Fatal(err) // nothing was produced
//	}
//	for _, failure := range summary.Failures {
//	    fmt.Printf("track %d failed: %v\n", failure.Number, failure.Err)
//	}
//
// # Failure Handling
//
// A failed download or probe aborts the run before any track is cut.
// Once cutting starts, failures are per-track: the affected track is
// recorded in the Summary and the run continues with the next one.
// Tracks run strictly one after another, in album order.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Polling consumers can instead call GetProgress for the track counts
// and the current stage.
package pipeline
