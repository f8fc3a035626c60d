package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yech1990/chromwin/internal/window"
)

func TestSummarize(t *testing.T) {
	s := Summarize("7", 6020, sampleWindows, "out/chromosome_7.csv")
	assert.Equal(t, Summary{
		Label:          "7",
		Length:         6020,
		Windows:        3,
		AmbiguousBases: 6002,
		LongNRuns:      1,
		Path:           "out/chromosome_7.csv",
	}, s)

	empty := Summarize("y", 0, nil, "")
	assert.Zero(t, empty.Windows)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, []Summary{
		{Label: "1", Length: 248956422, Windows: 3, Path: "c1.csv"},
		{Label: "unplaced", Length: 12, Windows: 1, LongNRuns: 1, Path: "cu.csv"},
	})
	out := buf.String()
	assert.Contains(t, out, "248,956,422")
	assert.Contains(t, out, "unplaced")
	assert.Contains(t, out, "Chromosome")
}

func TestRenderChromosomes(t *testing.T) {
	var buf bytes.Buffer
	RenderChromosomes(&buf, []ChromosomeStat{
		{Label: "1", Length: 1500, Ambiguous: 10, LongestRun: 6},
		{Label: "y"},
	})
	out := buf.String()
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "N/A")
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "0", formatWithCommas(0))
	assert.Equal(t, "999", formatWithCommas(999))
	assert.Equal(t, "1,000", formatWithCommas(1000))
	assert.Equal(t, "12,345,678", formatWithCommas(12345678))
}

func TestPreview(t *testing.T) {
	ws := make([]window.Window, 9)
	for i := range ws {
		ws[i] = window.Window{ID: i + 1, Length: 4, StartPosition: 2*i + 1, Sequence: "ACGT"}
	}
	var report bytes.Buffer
	require.NoError(t, Render(&report, "2", ws))

	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, strings.NewReader(report.String()), 4, 2))
	out := buf.String()
	assert.Contains(t, out, "Chromosome 2")
	assert.Contains(t, out, "9 windows")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "Position")

	err := Preview(&buf, strings.NewReader("Chromosome 1\nheader\n----\nnot a row\n"), 4, 0)
	assert.Error(t, err)

	err = Preview(&buf, strings.NewReader(""), 4, 0)
	assert.Error(t, err)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "ACGT", clip("ACGT", 0))
	assert.Equal(t, "ACGT", clip("ACGT", 4))
	assert.Equal(t, "AC…", clip("ACGT", 2))
}
