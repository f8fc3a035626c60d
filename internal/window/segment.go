// Package window splits chromosome sequences into overlapping windows and
// annotates each window with ambiguous-base statistics.
//
// Windows start every nominalLength/2 bases and span nominalLength bases,
// clipped at the end of the sequence. Iteration stops once fewer than
// nominalLength/2 bases remain from the next start offset. The last window
// therefore always reaches the sequence end, except for a sequence shorter
// than nominalLength/2, which yields no windows unless Segmenter.CoverTail
// is set.
package window

import (
	"strings"
	"unicode"
)

// Window is one annotated slice of a chromosome sequence.
type Window struct {
	ID               int
	Length           int
	AmbiguousCount   int
	ContinuousNCount int
	StartPosition    int // 1-based
	Sequence         string
}

type Segmenter struct {
	Scanner Scanner
	// CoverTail emits a single window for a non-empty sequence that is too
	// short to produce any regular window.
	CoverTail bool
}

func NewSegmenter(scanner Scanner) *Segmenter {
	return &Segmenter{Scanner: scanner}
}

// Segment returns the windows of sequence for the given nominal length.
// Positions are offsets into sequence with all whitespace removed.
func (sg *Segmenter) Segment(sequence string, nominalLength int) ([]Window, error) {
	if err := ValidateLength(nominalLength); err != nil {
		return nil, err
	}
	sequence = stripSpace(sequence)
	half := nominalLength / 2

	var windows []Window
	for offset := 0; offset <= len(sequence)-half; offset += half {
		windows = append(windows, sg.window(sequence, offset, nominalLength, len(windows)+1))
	}
	if sg.CoverTail && len(windows) == 0 && len(sequence) > 0 {
		windows = append(windows, sg.window(sequence, 0, nominalLength, 1))
	}
	return windows, nil
}

func (sg *Segmenter) window(sequence string, offset, nominalLength, id int) Window {
	end := offset + nominalLength
	if end > len(sequence) {
		end = len(sequence)
	}
	slice := sequence[offset:end]
	return Window{
		ID:               id,
		Length:           len(slice),
		AmbiguousCount:   sg.Scanner.AmbiguousCount(slice),
		ContinuousNCount: sg.Scanner.LongestAmbiguousRun(slice),
		StartPosition:    offset + 1,
		Sequence:         slice,
	}
}

func stripSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
