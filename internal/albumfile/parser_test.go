package albumfile

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFile = `# noise at the top of the file
url: https://www.youtube.com/watch?v=dQw4w9WgXcQ

artist: Boards of Canada
album: Music Has the Right to Children
year: 1998

0:00 Wildlife Analysis
1:17 An Eagle in Your Mind
7:40 The Color of the Fire
# a comment between entries
1:02:45 Happy Cycling
`

func TestParse(t *testing.T) {
	album, err := Parse(strings.NewReader(validFile))
	require.NoError(t, err)

	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", album.URL)
	assert.Equal(t, "Boards of Canada", album.Artist)
	assert.Equal(t, "Music Has the Right to Children", album.Title)
	assert.Equal(t, 1998, album.Year)

	require.Len(t, album.Tracks, 4)
	assert.Equal(t, Entry{Start: 0, Title: "Wildlife Analysis"}, album.Tracks[0])
	assert.Equal(t, Entry{Start: time.Minute + 17*time.Second, Title: "An Eagle in Your Mind"}, album.Tracks[1])
	assert.Equal(t, Entry{Start: 7*time.Minute + 40*time.Second, Title: "The Color of the Fire"}, album.Tracks[2])
	assert.Equal(t, Entry{Start: time.Hour + 2*time.Minute + 45*time.Second, Title: "Happy Cycling"}, album.Tracks[3])
}

func TestParse_LastKeyWins(t *testing.T) {
	input := `url: https://example.com/old
url: https://example.com/new
artist: Artist
album: Album
year: 2024
0:00 Only Track
`
	album, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new", album.URL)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantMsg  string
	}{
		{
			name:    "missing url",
			input:   "artist: A\nalbum: B\nyear: 2024\n0:00 One\n",
			wantMsg: "missing required value(s): url",
		},
		{
			name:    "missing artist and year",
			input:   "url: https://example.com\nalbum: B\n0:00 One\n",
			wantMsg: "missing required value(s): artist, year",
		},
		{
			name:    "empty value counts as missing",
			input:   "url: https://example.com\nartist:\nalbum: B\nyear: 2024\n0:00 One\n",
			wantMsg: "missing required value(s): artist",
		},
		{
			name:     "year is not an integer",
			input:    "url: u\nartist: A\nalbum: B\nyear: MCMXCVIII\n0:00 One\n",
			wantLine: 4,
			wantMsg:  `year "MCMXCVIII" is not an integer`,
		},
		{
			name:     "negative year",
			input:    "url: u\nartist: A\nalbum: B\nyear: -5\n0:00 One\n",
			wantLine: 4,
			wantMsg:  `year "-5" is not an integer`,
		},
		{
			name:    "empty tracklist",
			input:   "url: u\nartist: A\nalbum: B\nyear: 2024\n",
			wantMsg: `tracklist is empty: add at least one "MM:SS Title" line`,
		},
		{
			name:     "timestamp does not increase",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n0:00 One\n1:30 Two\n1:00 Three\n",
			wantLine: 7,
			wantMsg:  `track "Three" starts at 1:00, which is not after the previous track (1:30)`,
		},
		{
			name:     "timestamp repeats",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n0:00 One\n0:00 Two\n",
			wantLine: 6,
			wantMsg:  `track "Two" starts at 0:00, which is not after the previous track (0:00)`,
		},
		{
			name:     "seconds out of range",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n12:60 One\n",
			wantLine: 5,
			wantMsg:  `bad timestamp "12:60": seconds out of range`,
		},
		{
			name:     "minutes out of range with hours",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n1:75:00 One\n",
			wantLine: 5,
			wantMsg:  `bad timestamp "1:75:00": minutes out of range`,
		},
		{
			name:     "too many timestamp fields",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n1:2:3:4 One\n",
			wantLine: 5,
			wantMsg:  `bad timestamp "1:2:3:4": want MM:SS or H:MM:SS`,
		},
		{
			name:     "decimal timestamp",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n3.00 One\n",
			wantLine: 5,
			wantMsg:  `bad timestamp "3.00": want MM:SS or H:MM:SS`,
		},
		{
			name:     "entry without title",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\n3:00\n",
			wantLine: 5,
			wantMsg:  `tracklist entry "3:00" has no title`,
		},
		{
			name:     "unsupported key",
			input:    "url: u\nartist: A\ngenre: Rock\nalbum: B\nyear: 2024\n0:00 One\n",
			wantLine: 3,
			wantMsg:  `unsupported key "genre"`,
		},
		{
			name:     "unrecognized line",
			input:    "url: u\nartist: A\nalbum: B\nyear: 2024\njust some words\n0:00 One\n",
			wantLine: 5,
			wantMsg:  `cannot make sense of "just some words": expected "key: value" or "MM:SS Title"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "want *ConfigError, got %T", err)
			assert.Equal(t, tt.wantLine, cerr.Line)
			assert.Equal(t, tt.wantMsg, cerr.Msg)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.txt")
	require.Error(t, err)

	var cerr *ConfigError
	assert.False(t, errors.As(err, &cerr), "a missing file is not a config error")
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"0:00", 0},
		{"0:05", 5 * time.Second},
		{"3:58", 3*time.Minute + 58*time.Second},
		{"90:00", 90 * time.Minute},
		{"1:02:45", time.Hour + 2*time.Minute + 45*time.Second},
		{"11:00:00", 11 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{3*time.Minute + 58*time.Second, "3:58"},
		{90 * time.Minute, "1:30:00"},
		{time.Hour + 2*time.Minute + 45*time.Second, "1:02:45"},
		{12*time.Minute + 34*time.Second + 200*time.Millisecond, "12:34"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.input))
		})
	}
}
