package captions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steve-651/mcp-youtube/internal/model"
)

func TestParseWebVTT(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantSegments []model.TranscriptSegment
	}{
		{
			name: "single cue",
			content: `WEBVTT
Kind: captions
Language: en

00:00:01.000 --> 00:00:04.000
hello world
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 1, Duration: 3, Text: "hello world"},
			},
		},
		{
			name: "multi-line cue text joined with single space",
			content: `WEBVTT

00:00:01.000 --> 00:00:05.000
first line
second line
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 1, Duration: 4, Text: "first line second line"},
			},
		},
		{
			name: "cue settings stripped from end time",
			content: `WEBVTT

00:00:02.000 --> 00:00:06.500 align:start position:0%
styled cue
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 2, Duration: 5, Text: "styled cue"},
			},
		},
		{
			name: "inline markup stripped",
			content: `WEBVTT

00:00:00.000 --> 00:00:03.000
<c>hello</c> world
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 0, Duration: 3, Text: "hello world"},
			},
		},
		{
			name: "karaoke timing tags stripped",
			content: `WEBVTT

00:00:00.000 --> 00:00:03.000
so<00:00:00.840><c> today</c><00:00:01.280><c> we</c>
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 0, Duration: 3, Text: "so today we"},
			},
		},
		{
			name: "near-zero duration cue dropped",
			content: `WEBVTT

00:00:01.000 --> 00:00:01.005
blink
`,
			wantSegments: []model.TranscriptSegment{},
		},
		{
			name: "bridging duplicate suppressed",
			content: `WEBVTT

00:00:01.000 --> 00:00:03.000
same words here

00:00:03.000 --> 00:00:05.000
same words here
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 1, Duration: 2, Text: "same words here"},
			},
		},
		{
			name: "repeated text far apart is kept",
			content: `WEBVTT

00:00:01.000 --> 00:00:03.000
yeah

00:00:10.000 --> 00:00:12.000
yeah
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 1, Duration: 2, Text: "yeah"},
				{Start: 10, Duration: 2, Text: "yeah"},
			},
		},
		{
			name: "cue empty after markup stripping dropped",
			content: `WEBVTT

00:00:01.000 --> 00:00:03.000
<c></c>

00:00:04.000 --> 00:00:06.000
kept
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 4, Duration: 2, Text: "kept"},
			},
		},
		{
			name: "overlapping cues with distinct text preserved",
			content: `WEBVTT

00:00:01.000 --> 00:00:05.000
first speaker

00:00:02.000 --> 00:00:06.000
second speaker
`,
			wantSegments: []model.TranscriptSegment{
				{Start: 1, Duration: 4, Text: "first speaker"},
				{Start: 2, Duration: 4, Text: "second speaker"},
			},
		},
		{
			name:         "no timing lines yields empty sequence",
			content:      "WEBVTT\nKind: captions\n\njust some notes\n",
			wantSegments: []model.TranscriptSegment{},
		},
		{
			name:         "empty content",
			content:      "",
			wantSegments: []model.TranscriptSegment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWebVTT(tt.content)
			assert.Equal(t, tt.wantSegments, got)
		})
	}
}

func TestParseWebVTT_SourceOrderPreserved(t *testing.T) {
	content := `WEBVTT

00:00:10.000 --> 00:00:12.000
later cue listed first

00:00:01.000 --> 00:00:03.000
earlier cue listed second
`

	got := ParseWebVTT(content)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Start)
	assert.Equal(t, 1, got[1].Start)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		segments []model.TranscriptSegment
		want     string
	}{
		{
			name:     "no segments yields unknown",
			segments: nil,
			want:     "unknown",
		},
		{
			name: "english text detected",
			segments: []model.TranscriptSegment{
				{Text: "the quick brown fox jumps over the lazy dog"},
				{Text: "this is clearly an english sentence about nothing"},
				{Text: "and here is another one to make the vote decisive"},
			},
			want: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.segments))
		})
	}
}
