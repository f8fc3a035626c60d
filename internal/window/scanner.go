package window

// Defaults used by the reports.
const (
	DefaultBases     = "ACTG"
	DefaultThreshold = 5000
)

// Scanner classifies characters against a set of valid bases. Anything
// outside the set counts as an ambiguous base.
type Scanner struct {
	valid [256]bool
	// Threshold is the longest-run length a window must exceed before
	// LongestAmbiguousRun reports it.
	Threshold int
}

func NewScanner(bases string, threshold int) Scanner {
	s := Scanner{Threshold: threshold}
	for i := 0; i < len(bases); i++ {
		s.valid[bases[i]] = true
	}
	return s
}

func DefaultScanner() Scanner {
	return NewScanner(DefaultBases, DefaultThreshold)
}

// IsAmbiguous reports whether b is outside the valid base set.
func (s Scanner) IsAmbiguous(b byte) bool {
	return !s.valid[b]
}

// AmbiguousCount returns the number of ambiguous bases in segment.
func (s Scanner) AmbiguousCount(segment string) int {
	n := 0
	for i := 0; i < len(segment); i++ {
		if !s.valid[segment[i]] {
			n++
		}
	}
	return n
}

// LongestRun returns the longest stretch of consecutive ambiguous bases,
// with no threshold applied.
func (s Scanner) LongestRun(segment string) int {
	maxCount, current := 0, 0
	for i := 0; i < len(segment); i++ {
		if s.valid[segment[i]] {
			current = 0
			continue
		}
		current++
		if current > maxCount {
			maxCount = current
		}
	}
	return maxCount
}

// LongestAmbiguousRun is LongestRun gated by Threshold: runs that do not
// exceed it are reported as 0.
func (s Scanner) LongestAmbiguousRun(segment string) int {
	if n := s.LongestRun(segment); n > s.Threshold {
		return n
	}
	return 0
}
