package pipeline

import "fmt"

// TrackFailure records one track the run could not produce.
type TrackFailure struct {
	// Number is the 1-based track number.
	Number int

	// Title is the track title from the tracklist.
	Title string

	// Err is what went wrong, an *ExtractionError or *TaggingError.
	Err error
}

// ExtractionError reports that cutting a track out of the album audio
// failed. The other tracks are unaffected.
type ExtractionError struct {
	Number int
	Title  string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract track %d (%s): %v", e.Number, e.Title, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// TaggingError reports that a track was cut but its ID3 tags could not
// be written. The audio file is on disk, untagged.
type TaggingError struct {
	Number int
	Title  string
	Err    error
}

func (e *TaggingError) Error() string {
	return fmt.Sprintf("tag track %d (%s): %v", e.Number, e.Title, e.Err)
}

func (e *TaggingError) Unwrap() error { return e.Err }
