package report

import (
	"io"
	"strconv"

	"github.com/aquasecurity/table"
	"github.com/liamg/tml"

	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/window"
)

// Summary describes one processed chromosome.
type Summary struct {
	Label          genome.Label
	Length         int
	Windows        int
	AmbiguousBases int
	LongNRuns      int // windows with a reported continuous N count
	Path           string
}

// Summarize collects the totals for one chromosome's windows.
func Summarize(label genome.Label, length int, windows []window.Window, path string) Summary {
	s := Summary{Label: label, Length: length, Windows: len(windows), Path: path}
	for _, w := range windows {
		s.AmbiguousBases += w.AmbiguousCount
		if w.ContinuousNCount > 0 {
			s.LongNRuns++
		}
	}
	return s
}

func newTable(dst io.Writer, headers ...string) *table.Table {
	t := table.New(dst)
	for i := range headers {
		headers[i] = tml.Sprintf("<blue>%s</blue>", headers[i])
	}
	t.SetHeaders(headers...)
	t.SetHeaderStyle(table.StyleBold)
	t.SetLineStyle(table.StyleBlue)
	t.SetDividers(table.UnicodeRoundedDividers)
	return t
}

// RenderSummary prints one table row per processed chromosome.
func RenderSummary(dst io.Writer, summaries []Summary) {
	t := newTable(dst, "Chromosome", "Length", "Windows", "Ambiguous", "Long N", "Report")
	for _, s := range summaries {
		longN := strconv.Itoa(s.LongNRuns)
		if s.LongNRuns > 0 {
			longN = tml.Sprintf("<yellow>%d</yellow>", s.LongNRuns)
		}
		t.AddRow(
			string(s.Label),
			formatWithCommas(s.Length),
			formatWithCommas(s.Windows),
			formatWithCommas(s.AmbiguousBases),
			longN,
			tml.Sprintf("<green>%s</green>", s.Path),
		)
	}
	t.Render()
}

// ChromosomeStat is the whole-sequence view used by the chroms command.
type ChromosomeStat struct {
	Label      genome.Label
	Length     int
	Ambiguous  int
	LongestRun int
}

func RenderChromosomes(dst io.Writer, stats []ChromosomeStat) {
	t := newTable(dst, "Chromosome", "Length", "Ambiguous Bases", "Longest Ambiguous Run")
	for _, s := range stats {
		if s.Length == 0 {
			t.AddRow(string(s.Label), "N/A", "N/A", "N/A")
			continue
		}
		t.AddRow(
			string(s.Label),
			tml.Sprintf("<green>%s</green>", formatWithCommas(s.Length)),
			formatWithCommas(s.Ambiguous),
			formatWithCommas(s.LongestRun),
		)
	}
	t.Render()
}

func formatWithCommas(num int) string {
	str := strconv.Itoa(num)
	n := len(str)
	if n <= 3 {
		return str
	}
	out := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, str[i])
	}
	return string(out)
}
