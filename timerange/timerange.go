package timerange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time string matches none of the
// accepted shapes: "SS", "MM:SS" or "H:MM:SS".
var ErrInvalidTimeFormat = errors.New("invalid time format, expected SS, MM:SS or H:MM:SS")

// ErrInvalidRange is returned when the end time is not after the start time.
var ErrInvalidRange = errors.New("end time must be after start time")

// Range is a validated, immutable clip window in seconds. The raw request
// strings are kept so the response can echo them back unchanged.
type Range struct {
	Start float64
	End   float64

	rawStart string
	rawEnd   string
}

// ParseSeconds converts a clock-style time string into seconds. Components
// are summed positionally, so "1:02:03" is 1*3600 + 2*60 + 3 = 3723.
// Components need not be zero-padded.
func ParseSeconds(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 1 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		total = total*60 + n
	}
	return float64(total), nil
}

// New parses and validates a (start, end) pair of time strings.
func New(start, end string) (Range, error) {
	startSec, err := ParseSeconds(start)
	if err != nil {
		return Range{}, err
	}
	endSec, err := ParseSeconds(end)
	if err != nil {
		return Range{}, err
	}
	if endSec <= startSec {
		return Range{}, fmt.Errorf("%w: %q is not after %q", ErrInvalidRange, end, start)
	}
	return Range{
		Start:    startSec,
		End:      endSec,
		rawStart: strings.TrimSpace(start),
		rawEnd:   strings.TrimSpace(end),
	}, nil
}

// Duration returns the window length in seconds.
func (r Range) Duration() float64 {
	return r.End - r.Start
}

// String echoes the range as it appeared in the request, e.g. "0:10 - 0:20".
func (r Range) String() string {
	return r.rawStart + " - " + r.rawEnd
}
