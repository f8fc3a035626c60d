// Package report renders chromosome windows as fixed-column text tables and
// summarises finished runs.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/window"
)

const separatorWidth = 100

type column struct {
	title string
	width int
}

var columns = []column{
	{"ID", 5},
	{"Length", 6},
	{"Ambiguous Base Count", 20},
	{"Continuous N Count", 20},
	{"Position", 8},
	{"Sequence", 0},
}

// Writer writes one report file per chromosome into Dir.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{Dir: dir}
}

// FileName is the report name for label.
func FileName(label genome.Label) string {
	return fmt.Sprintf("chromosome_%s.csv", label)
}

// Write renders windows to Dir/chromosome_<label>.csv and returns the path.
func (w *Writer) Write(label genome.Label, windows []window.Window) (path string, err error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", w.Dir, err)
	}
	path = filepath.Join(w.Dir, FileName(label))
	fh, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing report %s: %w", path, cerr)
		}
	}()
	if err := Render(fh, label, windows); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}

// Render writes the report for label to dst.
func Render(dst io.Writer, label genome.Label, windows []window.Window) error {
	bw := bufio.NewWriter(dst)
	fmt.Fprintf(bw, "Chromosome %s\n", label)

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.title
	}
	writeRow(bw, titles)
	bw.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	for _, w := range windows {
		writeRow(bw, []string{
			strconv.Itoa(w.ID),
			strconv.Itoa(w.Length),
			strconv.Itoa(w.AmbiguousCount),
			strconv.Itoa(w.ContinuousNCount),
			strconv.Itoa(w.StartPosition),
			w.Sequence,
		})
	}
	return bw.Flush()
}

func writeRow(bw *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			bw.WriteString(" | ")
		}
		bw.WriteString(padRight(f, columns[i].width))
	}
	bw.WriteByte('\n')
}
