package genome

import (
	"fmt"
	"regexp"
	"strconv"
)

// Label names a chromosome group: "1".."22", "x", "y" or "unplaced".
type Label string

const Unplaced Label = "unplaced"

// DefaultLabels returns the human chromosome labels in report order.
func DefaultLabels() []Label {
	labels := make([]Label, 0, 25)
	for i := 1; i <= 22; i++ {
		labels = append(labels, Label(strconv.Itoa(i)))
	}
	return append(labels, "x", "y", Unplaced)
}

var chromosomePattern = regexp.MustCompile(`chromosome (\d+|x+|y+)`)

// LabelMatcher maps FASTA header lines onto a fixed label set.
type LabelMatcher struct {
	labels []Label
	known  map[Label]bool
}

func NewLabelMatcher(labels []Label) (*LabelMatcher, error) {
	m := &LabelMatcher{known: make(map[Label]bool, len(labels))}
	for _, l := range labels {
		if m.known[l] {
			return nil, fmt.Errorf("duplicate chromosome label %q", l)
		}
		m.known[l] = true
		m.labels = append(m.labels, l)
	}
	if !m.known[Unplaced] {
		return nil, fmt.Errorf("label set must contain %q", Unplaced)
	}
	return m, nil
}

func DefaultLabelMatcher() *LabelMatcher {
	m, _ := NewLabelMatcher(DefaultLabels())
	return m
}

// Labels returns the label set in its fixed order.
func (m *LabelMatcher) Labels() []Label {
	return append([]Label(nil), m.labels...)
}

// Match returns the label named in header, or Unplaced when the header has
// no recognisable chromosome or names one outside the label set.
func (m *LabelMatcher) Match(header string) Label {
	sub := chromosomePattern.FindStringSubmatch(header)
	if sub == nil {
		return Unplaced
	}
	label := Label(sub[1])
	if c := sub[1][0]; c == 'x' || c == 'y' {
		label = Label(c)
	}
	if !m.known[label] {
		return Unplaced
	}
	return label
}
