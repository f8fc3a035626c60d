// Package genome reads multi-record FASTA input into per-chromosome
// sequences.
package genome

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/sirupsen/logrus"

	"github.com/yech1990/chromwin/internal/logging"
)

// ErrInputAbsent marks an input source that is missing or unreadable.
var ErrInputAbsent = errors.New("input sequence source absent")

type Parser struct {
	Matcher *LabelMatcher
	Log     logrus.FieldLogger
}

func NewParser(m *LabelMatcher, log logrus.FieldLogger) *Parser {
	if m == nil {
		m = DefaultLabelMatcher()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Parser{Matcher: m, Log: log}
}

// Parse reads every FASTA record from r and files its residues under the
// label found in the record header. Records sharing a label are
// concatenated in input order.
func (p *Parser) Parse(r io.Reader) (*Store, error) {
	store := NewStore(p.Matcher.Labels())
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	records := 0
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		header := s.Name()
		if desc := s.Description(); desc != "" {
			header += " " + desc
		}
		label := p.Matcher.Match(header)
		p.Log.WithFields(logrus.Fields{"record": s.Name(), "label": label}).Debug("record header")

		residues := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			residues[i] = byte(l)
		}
		store.Append(label, residues)
		records++
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}
	p.Log.WithField("records", records).Info("parsed input")
	return store, nil
}

// ParseFile parses path, reading stdin for "-" and decompressing ".gz"
// files.
func (p *Parser) ParseFile(path string) (*Store, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return p.Parse(rc)
}

// Open returns a reader for path. "-" is stdin; a ".gz" suffix is read
// through gzip.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputAbsent, err)
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("%w: opening gzip file %s: %w", ErrInputAbsent, path, err)
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
