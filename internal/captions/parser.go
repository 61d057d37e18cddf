// Package captions transforms raw WebVTT caption content into ordered
// transcript segments, filtering the near-duplicate "bridging" cues that
// YouTube auto-captioning emits to smooth caption transitions.
package captions

import (
	"math"
	"regexp"
	"strings"

	"github.com/Steve-651/mcp-youtube/internal/model"
	"github.com/Steve-651/mcp-youtube/internal/timecode"
)

// minCueDuration is the anti-bridging threshold in seconds. Cues at or
// below this length are caption-transition noise, not speech.
const minCueDuration = 0.010

// cueTimingRe matches a WebVTT cue timing line. The end-time group stops at
// whitespace, so trailing cue settings (align:start position:0% ...) never
// reach the timecode parser.
var cueTimingRe = regexp.MustCompile(`^\s*([\d:.]+)\s+-->\s+([\d:.]+)`)

// markupRe matches inline angle-bracket spans such as <c> voice and
// karaoke-timing tags embedded in cue text.
var markupRe = regexp.MustCompile(`<[^>]*>`)

// cue is one timed caption entry before filtering
type cue struct {
	start float64
	end   float64
	text  string
}

// ParseWebVTT parses raw WebVTT content into ordered transcript segments.
// Cue order follows the source file; no re-sorting. Content with zero cue
// timing lines yields an empty slice, not an error.
func ParseWebVTT(content string) []model.TranscriptSegment {
	lines := strings.Split(content, "\n")

	segments := make([]model.TranscriptSegment, 0)
	var prev *cue

	for i := 0; i < len(lines); i++ {
		m := cueTimingRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}

		c := cue{
			start: timecode.Parse(m[1]),
			end:   timecode.Parse(m[2]),
		}

		// collect the cue's text: every following non-blank, non-timing line
		var textLines []string
		for j := i + 1; j < len(lines); j++ {
			line := strings.TrimSpace(lines[j])
			if line == "" || cueTimingRe.MatchString(lines[j]) {
				break
			}
			textLines = append(textLines, line)
			i = j
		}

		c.text = stripMarkup(strings.Join(textLines, " "))
		if !keepCue(c, prev) {
			continue
		}

		segments = append(segments, model.TranscriptSegment{
			Start:    int(math.Round(c.start)),
			Duration: int(math.Round(c.end - c.start)),
			Text:     c.text,
		})
		kept := c
		prev = &kept
	}

	return segments
}

// keepCue applies the duplicate-bridging filters: degenerate durations are
// dropped, as is a cue repeating the previous text immediately after the
// previous cue ends.
func keepCue(c cue, prev *cue) bool {
	if c.text == "" {
		return false
	}
	if c.end-c.start <= minCueDuration {
		return false
	}
	if prev != nil && c.text == prev.text && c.start <= prev.end+minCueDuration {
		return false
	}
	return true
}

// stripMarkup removes inline angle-bracket spans and collapses the
// whitespace they leave behind.
func stripMarkup(text string) string {
	text = markupRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
