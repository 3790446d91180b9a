package albumfile

import (
	"fmt"
	"time"
)

// Segment is one planned cut of the album audio.
//
// Segments are half-open [Start, End) windows. The final segment of a
// plan has no fixed end: it runs to the end of the media, whose length
// is only known after the audio has been downloaded. Use EndAt to
// resolve the effective end once that length is available.
type Segment struct {
	// Index is the 1-based track number.
	Index int

	// Title is the track title from the tracklist.
	Title string

	// Start is the offset into the album audio where the track begins.
	Start time.Duration

	// End is the offset where the track ends. Meaningless when OpenEnd
	// is set.
	End time.Duration

	// OpenEnd marks the final segment, which ends wherever the media
	// does.
	OpenEnd bool
}

// PlanSegments turns a tracklist into contiguous cut windows.
//
// Each entry produces exactly one segment, in order: the segment starts
// at the entry's timestamp and ends at the next entry's timestamp, so
// adjacent segments share a boundary with no gap and no overlap. The
// last segment is open-ended.
//
// The entries must be non-empty with strictly increasing starts. Parse
// already guarantees that, so a PlanError here points at hand-built
// input.
func PlanSegments(entries []Entry) ([]Segment, error) {
	if len(entries) == 0 {
		return nil, &PlanError{Msg: "no tracklist entries to plan"}
	}

	segments := make([]Segment, len(entries))
	for i, entry := range entries {
		if i > 0 && entry.Start <= entries[i-1].Start {
			return nil, &PlanError{Msg: fmt.Sprintf(
				"entry %d (%q) does not start after its predecessor", i+1, entry.Title)}
		}

		segments[i] = Segment{
			Index: i + 1,
			Title: entry.Title,
			Start: entry.Start,
		}
		if i < len(entries)-1 {
			segments[i].End = entries[i+1].Start
		} else {
			segments[i].OpenEnd = true
		}
	}

	return segments, nil
}

// EndAt resolves the effective end of the segment for media of the
// given total length. Open-ended segments run to the end of the media;
// bounded segments never extend past it.
func (s Segment) EndAt(total time.Duration) time.Duration {
	if s.OpenEnd || s.End > total {
		return total
	}
	return s.End
}

// Length reports how much audio the segment covers in media of the
// given total length.
func (s Segment) Length(total time.Duration) time.Duration {
	return s.EndAt(total) - s.Start
}
