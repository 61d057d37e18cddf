// Package timecode converts between the textual HH:MM:SS.mmm timestamp
// format used by WebVTT cue timings and a numeric seconds representation.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse converts a HH:MM:SS.mmm timestamp to seconds. Malformed or missing
// numeric fields default to zero instead of failing, so Parse never errors.
func Parse(text string) float64 {
	parts := strings.Split(strings.TrimSpace(text), ":")

	var hours, minutes, seconds float64
	switch len(parts) {
	case 3:
		hours = parseField(parts[0])
		minutes = parseField(parts[1])
		seconds = parseField(parts[2])
	case 2:
		minutes = parseField(parts[0])
		seconds = parseField(parts[1])
	case 1:
		seconds = parseField(parts[0])
	default:
		// more than three fields: take the last three
		hours = parseField(parts[len(parts)-3])
		minutes = parseField(parts[len(parts)-2])
		seconds = parseField(parts[len(parts)-1])
	}

	return hours*3600 + minutes*60 + seconds
}

// Format renders seconds as zero-padded HH:MM:SS.mmm with exactly three
// fractional digits. Negative input is clamped to zero.
func Format(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	whole := int(seconds)
	millis := int(math.Round((seconds - float64(whole)) * 1000))
	if millis >= 1000 {
		whole++
		millis -= 1000
	}

	h := whole / 3600
	m := (whole % 3600) / 60
	s := whole % 60

	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, millis)
}

// parseField parses one numeric field, allowing a fractional component.
// Anything unparseable becomes 0.
func parseField(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0
	}
	return v
}
