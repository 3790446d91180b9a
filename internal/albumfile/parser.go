package albumfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Album is the parsed contents of an album description file: the source
// video URL, the release metadata, and the timestamped tracklist.
type Album struct {
	// URL is the source video to download audio from.
	URL string

	// Artist is the album artist name.
	Artist string

	// Title is the album title.
	Title string

	// Year is the release year.
	Year int

	// Tracks is the tracklist in file order. Parse guarantees it is
	// non-empty with strictly increasing start offsets.
	Tracks []Entry
}

// Entry is a single tracklist line: where the track starts in the album
// audio, and what it is called.
type Entry struct {
	Start time.Duration
	Title string
}

// ParseFile reads and parses the album description file at path.
func ParseFile(path string) (*Album, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open album file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an album description file from r.
//
// The file is read line by line. Blank lines and # comments are
// skipped; "key: value" lines set the url, artist, album and year
// metadata (a repeated key keeps its last value); lines starting with a
// digit are tracklist entries of the form "<timestamp> <title>". Any
// other line is an error.
//
// Parse returns a *ConfigError describing the first problem found:
// a malformed timestamp, a missing title, an unrecognized line, a
// non-integer year, a timestamp that does not increase on its
// predecessor, a missing metadata key, or an empty tracklist.
func Parse(r io.Reader) (*Album, error) {
	album := &Album{}
	haveYear := false

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if key, value, ok := cutKeyLine(line); ok {
			switch key {
			case "url":
				album.URL = value
			case "artist":
				album.Artist = value
			case "album":
				album.Title = value
			case "year":
				year, err := parseDigits(value)
				if err != nil {
					return nil, &ConfigError{Line: lineNo, Msg: fmt.Sprintf("year %q is not an integer", value)}
				}
				album.Year = year
				haveYear = true
			default:
				return nil, &ConfigError{Line: lineNo, Msg: fmt.Sprintf("unsupported key %q", key)}
			}
			continue
		}

		if line[0] >= '0' && line[0] <= '9' {
			entry, err := parseEntry(line)
			if err != nil {
				return nil, &ConfigError{Line: lineNo, Msg: err.Error()}
			}
			if prev := len(album.Tracks) - 1; prev >= 0 && entry.Start <= album.Tracks[prev].Start {
				return nil, &ConfigError{Line: lineNo, Msg: fmt.Sprintf(
					"track %q starts at %s, which is not after the previous track (%s)",
					entry.Title, FormatTimestamp(entry.Start), FormatTimestamp(album.Tracks[prev].Start))}
			}
			album.Tracks = append(album.Tracks, entry)
			continue
		}

		return nil, &ConfigError{Line: lineNo, Msg: fmt.Sprintf(
			"cannot make sense of %q: expected \"key: value\" or \"MM:SS Title\"", line)}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read album file: %w", err)
	}

	var missing []string
	if album.URL == "" {
		missing = append(missing, "url")
	}
	if album.Artist == "" {
		missing = append(missing, "artist")
	}
	if album.Title == "" {
		missing = append(missing, "album")
	}
	if !haveYear {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Msg: "missing required value(s): " + strings.Join(missing, ", ")}
	}

	if len(album.Tracks) == 0 {
		return nil, &ConfigError{Msg: `tracklist is empty: add at least one "MM:SS Title" line`}
	}

	return album, nil
}

// cutKeyLine splits a metadata line into key and value. A metadata line
// starts with a letter and has a colon before any whitespace, which
// keeps tracklist lines like "3:58 On the Run" out of this path.
func cutKeyLine(line string) (key, value string, ok bool) {
	if line[0] == ':' || line[0] >= '0' && line[0] <= '9' {
		return "", "", false
	}
	key, value, found := strings.Cut(line, ":")
	if !found || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value), true
}

// parseEntry splits a tracklist line into its timestamp and title.
func parseEntry(line string) (Entry, error) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return Entry{}, fmt.Errorf("tracklist entry %q has no title", line)
	}

	start, err := ParseTimestamp(line[:i])
	if err != nil {
		return Entry{}, err
	}

	return Entry{Start: start, Title: strings.TrimSpace(line[i+1:])}, nil
}
