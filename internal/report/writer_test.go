package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yech1990/chromwin/internal/window"
)

var sampleWindows = []window.Window{
	{ID: 1, Length: 10, AmbiguousCount: 0, ContinuousNCount: 0, StartPosition: 1, Sequence: "ACTGACTGAC"},
	{ID: 2, Length: 10, AmbiguousCount: 2, ContinuousNCount: 0, StartPosition: 6, Sequence: "CTGACNNGAC"},
	{ID: 12345678, Length: 6001, AmbiguousCount: 6000, ContinuousNCount: 6000, StartPosition: 123456789, Sequence: "N"},
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "7", sampleWindows))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Chromosome 7", lines[0])
	assert.Equal(t, "ID    | Length | Ambiguous Base Count | Continuous N Count   | Position | Sequence", lines[1])
	assert.Equal(t, strings.Repeat("-", 100), lines[2])
	for i, w := range sampleWindows {
		want := fmt.Sprintf("%-5d | %-6d | %-20d | %-20d | %-8d | %s",
			w.ID, w.Length, w.AmbiguousCount, w.ContinuousNCount, w.StartPosition, w.Sequence)
		assert.Equal(t, want, lines[3+i])
	}
	assert.Equal(t, "12345678 | 6001   | 6000                 | 6000                 | 123456789 | N", lines[5])
}

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := NewWriter(dir).Write("x", sampleWindows[:1])
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chromosome_x.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Chromosome x\n"))
	assert.True(t, strings.HasSuffix(string(data), "| 1        | ACTGACTGAC\n"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))
	assert.Equal(t, "染色体 ", padRight("染色体", 7))
	assert.Equal(t, "", padRight("", 0))
}
