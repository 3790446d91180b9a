package albumfile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSegments(t *testing.T) {
	entries := []Entry{
		{Start: 0, Title: "One"},
		{Start: 3 * time.Minute, Title: "Two"},
		{Start: 7*time.Minute + 30*time.Second, Title: "Three"},
	}

	segments, err := PlanSegments(entries)
	require.NoError(t, err)
	require.Len(t, segments, len(entries))

	// Every track keeps its identity and order.
	for i, seg := range segments {
		assert.Equal(t, i+1, seg.Index)
		assert.Equal(t, entries[i].Title, seg.Title)
		assert.Equal(t, entries[i].Start, seg.Start)
	}

	// Adjacent segments share a boundary: no gap, no overlap.
	for i := 0; i < len(segments)-1; i++ {
		assert.Equal(t, segments[i+1].Start, segments[i].End)
		assert.False(t, segments[i].OpenEnd)
	}

	assert.True(t, segments[len(segments)-1].OpenEnd)
}

func TestPlanSegments_SingleEntry(t *testing.T) {
	segments, err := PlanSegments([]Entry{{Start: 0, Title: "Whole Thing"}})
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.True(t, segments[0].OpenEnd)
	assert.Equal(t, time.Duration(0), segments[0].Start)
}

func TestPlanSegments_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantMsg string
	}{
		{
			name:    "empty tracklist",
			entries: nil,
			wantMsg: "no tracklist entries to plan",
		},
		{
			name: "start goes backwards",
			entries: []Entry{
				{Start: 0, Title: "One"},
				{Start: 90 * time.Second, Title: "Two"},
				{Start: time.Minute, Title: "Three"},
			},
			wantMsg: `entry 3 ("Three") does not start after its predecessor`,
		},
		{
			name: "start repeats",
			entries: []Entry{
				{Start: time.Minute, Title: "One"},
				{Start: time.Minute, Title: "Two"},
			},
			wantMsg: `entry 2 ("Two") does not start after its predecessor`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanSegments(tt.entries)
			require.Error(t, err)

			var perr *PlanError
			require.True(t, errors.As(err, &perr), "want *PlanError, got %T", err)
			assert.Equal(t, tt.wantMsg, perr.Msg)
		})
	}
}

func TestSegment_EndAt(t *testing.T) {
	total := 12*time.Minute + 34*time.Second

	tests := []struct {
		name string
		seg  Segment
		want time.Duration
	}{
		{
			name: "open end resolves to the media length",
			seg:  Segment{Start: 10 * time.Minute, OpenEnd: true},
			want: total,
		},
		{
			name: "bounded end is kept",
			seg:  Segment{Start: 0, End: 3 * time.Minute},
			want: 3 * time.Minute,
		},
		{
			name: "bounded end never passes the media length",
			seg:  Segment{Start: 10 * time.Minute, End: 15 * time.Minute},
			want: total,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.seg.EndAt(total))
		})
	}
}

func TestSegment_Length(t *testing.T) {
	total := 6 * time.Minute

	first := Segment{Start: 0, End: 3 * time.Minute}
	last := Segment{Start: 3 * time.Minute, OpenEnd: true}

	assert.Equal(t, 3*time.Minute, first.Length(total))
	assert.Equal(t, 3*time.Minute, last.Length(total))
}
