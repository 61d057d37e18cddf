package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{
			name:  "full timestamp with milliseconds",
			input: "01:02:03.500",
			want:  3723.5,
		},
		{
			name:  "zero timestamp",
			input: "00:00:00.000",
			want:  0,
		},
		{
			name:  "minutes and seconds only",
			input: "02:30.250",
			want:  150.25,
		},
		{
			name:  "bare seconds",
			input: "45.5",
			want:  45.5,
		},
		{
			name:  "surrounding whitespace",
			input: " 00:00:01.000 ",
			want:  1,
		},
		{
			name:  "malformed hour field defaults to zero",
			input: "xx:01:30.000",
			want:  90,
		},
		{
			name:  "completely malformed input defaults to zero",
			input: "not-a-timestamp",
			want:  0,
		},
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{
			name:    "hours minutes seconds millis",
			seconds: 3723.5,
			want:    "01:02:03.500",
		},
		{
			name:    "zero",
			seconds: 0,
			want:    "00:00:00.000",
		},
		{
			name:    "sub-second value",
			seconds: 0.042,
			want:    "00:00:00.042",
		},
		{
			name:    "millisecond rounding carries into seconds",
			seconds: 59.9999,
			want:    "00:01:00.000",
		},
		{
			name:    "negative clamps to zero",
			seconds: -5,
			want:    "00:00:00.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.seconds))
		})
	}
}

// Format(Parse(x)) reproduces x for well-formed HH:MM:SS.mmm input
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"00:00:00.000",
		"00:00:01.005",
		"00:12:34.567",
		"10:59:59.999",
	}

	for _, input := range inputs {
		assert.Equal(t, input, Format(Parse(input)))
	}
}
