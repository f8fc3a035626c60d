package genome

import (
	"bytes"
	"strings"
)

// Store holds the concatenated, upper-cased sequence of every label.
type Store struct {
	labels []Label
	seqs   map[Label]*strings.Builder
}

func NewStore(labels []Label) *Store {
	s := &Store{labels: append([]Label(nil), labels...), seqs: make(map[Label]*strings.Builder, len(labels))}
	for _, l := range labels {
		s.seqs[l] = &strings.Builder{}
	}
	return s
}

// Append adds residues to the end of label's sequence. Unknown labels are
// folded into Unplaced.
func (s *Store) Append(label Label, residues []byte) {
	b, ok := s.seqs[label]
	if !ok {
		b = s.seqs[Unplaced]
	}
	b.Write(bytes.ToUpper(residues))
}

func (s *Store) Labels() []Label {
	return append([]Label(nil), s.labels...)
}

func (s *Store) Sequence(label Label) string {
	if b, ok := s.seqs[label]; ok {
		return b.String()
	}
	return ""
}

func (s *Store) Len(label Label) int {
	if b, ok := s.seqs[label]; ok {
		return b.Len()
	}
	return 0
}
