package timerange

import (
	"errors"
	"testing"
)

func TestParseSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"45", 45},
		{"1:05", 65},
		{"00:30", 30},
		{"1:02:03", 3723},
		{"10:00", 600},
		{"2:00:00", 7200},
		{" 0:30 ", 30},
	}
	for _, tc := range cases {
		got, err := ParseSeconds(tc.in)
		if err != nil {
			t.Errorf("ParseSeconds(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSeconds(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSecondsRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "1::5", "-5", "0:-1", "1.5", "0:30s"} {
		if _, err := ParseSeconds(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ParseSeconds(%q) = %v, want ErrInvalidTimeFormat", in, err)
		}
	}
}

func TestNewValidatesOrdering(t *testing.T) {
	r, err := New("0:10", "0:20")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Start != 10 || r.End != 20 || r.Duration() != 10 {
		t.Errorf("range = %+v", r)
	}
	if r.String() != "0:10 - 0:20" {
		t.Errorf("String() = %q", r.String())
	}

	for _, pair := range [][2]string{{"0:20", "0:10"}, {"0:10", "0:10"}} {
		if _, err := New(pair[0], pair[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("New(%q, %q) = %v, want ErrInvalidRange", pair[0], pair[1], err)
		}
	}
}

func TestNewPropagatesFormatErrors(t *testing.T) {
	if _, err := New("bogus", "0:10"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat for bad start, got %v", err)
	}
	if _, err := New("0:10", "bogus"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat for bad end, got %v", err)
	}
}
