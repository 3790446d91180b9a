// Package albumfile reads album description files and plans how the
// album audio is cut into tracks.
//
// An album description file is a small, hand-edited text file that names
// the source video plus the album metadata and lists one timestamped
// line per track:
//
//	# My favourite record
//	url: https://www.youtube.com/watch?v=xxxxxxxxxxx
//	artist: Pink Floyd
//	album: The Dark Side of the Moon
//	year: 1973
//
//	0:00 Speak to Me
//	1:08 Breathe (In the Air)
//	3:58 On the Run
//
// Blank lines and lines starting with # are ignored. A tracklist line is
// a timestamp (MM:SS, or H:MM:SS for long videos) followed by the track
// title; timestamps mark where each track starts and must strictly
// increase down the file.
//
// # Parsing
//
//	album, err := albumfile.ParseFile("album.txt")
//	if err != nil {
//	    var cerr *albumfile.ConfigError
//	    if errors.As(err, &cerr) {
//	        // cerr.Line points at the offending line, when there is one
//	    }
//	}
//
// # Planning
//
// PlanSegments turns the tracklist into contiguous cut windows: each
// track runs from its own timestamp to the next track's timestamp, and
// the last track runs to the end of the media. The planner never touches
// the filesystem or the network; the end of the final segment is only
// resolved later, once the real audio duration is known:
//
//	segments, err := albumfile.PlanSegments(album.Tracks)
//	last := segments[len(segments)-1]
//	end := last.EndAt(assetDuration) // == assetDuration
package albumfile
