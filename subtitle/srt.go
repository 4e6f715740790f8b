package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"clipscribe/types"
)

// DefaultMaxLineLen is the character budget for a single subtitle line.
const DefaultMaxLineLen = 42

// Options controls SRT generation.
type Options struct {
	// MaxLineLen overrides the per-line character budget; zero means
	// DefaultMaxLineLen.
	MaxLineLen int

	// SkipEmpty drops segments with no text instead of emitting a cue with
	// an empty text block. The default (false) keeps the empty cue so
	// players see continuous timing.
	SkipEmpty bool
}

// ToSRT renders ordered transcript segments as SRT cue blocks. Each segment
// becomes one cue: a 1-based index, a timestamp line, one or two text lines,
// and a blank separator. Cue numbering is contiguous across the whole output
// and cue bounds equal the source segment bounds.
func ToSRT(segments []types.Segment, opts Options) string {
	budget := opts.MaxLineLen
	if budget <= 0 {
		budget = DefaultMaxLineLen
	}

	var b strings.Builder
	index := 1
	for _, seg := range segments {
		text := strings.Join(strings.Fields(seg.Text), " ")
		if text == "" && opts.SkipEmpty {
			continue
		}

		b.WriteString(strconv.Itoa(index))
		b.WriteByte('\n')
		b.WriteString(FormatTimestamp(seg.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(seg.End))
		b.WriteByte('\n')
		for _, line := range wrapLines(text, budget) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		index++
	}

	return strings.TrimSpace(b.String())
}

// wrapLines splits text into at most two lines. Line one is filled greedily
// up to the budget without breaking words; line two takes everything left,
// even past the budget, so no word is ever dropped.
func wrapLines(text string, budget int) []string {
	if len(text) <= budget {
		return []string{text}
	}

	words := strings.Fields(text)
	used := 0
	split := 0
	for i, w := range words {
		need := len(w)
		if used > 0 {
			need++ // joining space
		}
		if used+need > budget && used > 0 {
			break
		}
		used += need
		split = i + 1
	}

	if split >= len(words) {
		return []string{strings.Join(words, " ")}
	}
	return []string{
		strings.Join(words[:split], " "),
		strings.Join(words[split:], " "),
	}
}

// FormatTimestamp renders seconds as an SRT timestamp, "HH:MM:SS,mmm".
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int64(math.Round(seconds * 1000))

	h := ms / 3_600_000
	ms %= 3_600_000
	m := ms / 60_000
	ms %= 60_000
	s := ms / 1_000
	ms %= 1_000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
