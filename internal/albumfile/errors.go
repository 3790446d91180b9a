package albumfile

import "fmt"

// ConfigError describes a problem with an album description file.
//
// Parsing stops at the first problem found, so one run reports one
// error. The error text names the offending line where there is one;
// problems with the file as a whole (a missing key, an empty tracklist)
// carry no line number.
type ConfigError struct {
	// Line is the 1-based line number the problem was found on,
	// or 0 when the problem concerns the file as a whole.
	Line int

	// Msg describes the problem in user terms.
	Msg string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("album file: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("album file: %s", e.Msg)
}

// PlanError reports a tracklist that cannot be turned into a segment
// plan. Parse validates the tracklist before it is planned, so a
// PlanError normally means the entries were assembled by hand and
// skipped that validation.
type PlanError struct {
	Msg string
}

func (e *PlanError) Error() string {
	return "segment plan: " + e.Msg
}
