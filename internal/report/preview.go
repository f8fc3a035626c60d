package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/liamg/tml"
)

// Preview renders the head and tail of a written report as a table, with
// an ellipsis row between them when rows were skipped. Sequences longer
// than seqWidth are cut short.
func Preview(dst io.Writer, src io.Reader, maxRows, seqWidth int) error {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var title string
	var rows [][]string
	for line := 0; sc.Scan(); line++ {
		switch {
		case line == 0:
			title = sc.Text()
		case line <= 2:
			// column header and separator rule
		default:
			fields := strings.Split(sc.Text(), " | ")
			if len(fields) != len(columns) {
				return fmt.Errorf("report line %d: expected %d columns, got %d", line+1, len(columns), len(fields))
			}
			for i := range fields {
				fields[i] = strings.TrimRight(fields[i], " ")
			}
			rows = append(rows, fields)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading report: %w", err)
	}
	if title == "" {
		return fmt.Errorf("empty report")
	}

	head := maxRows/2 + maxRows%2
	tail := maxRows / 2
	shown := rows
	truncated := len(rows) > maxRows
	if truncated {
		shown = append(append([][]string{}, rows[:head]...), rows[len(rows)-tail:]...)
	}

	fmt.Fprintln(dst, tml.Sprintf("<bold>%s</bold> <darkgrey>(%d windows)</darkgrey>", title, len(rows)))
	t := newTable(dst, "ID", "Length", "Ambiguous", "Continuous N", "Position", "Sequence")
	for i, row := range shown {
		if truncated && i == head {
			t.AddRow("...", "...", "...", "...", "...", "...")
		}
		out := append([]string(nil), row...)
		out[len(out)-1] = colorizeSequence(clip(row[len(row)-1], seqWidth))
		t.AddRow(out...)
	}
	t.Render()
	return nil
}

func clip(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func colorizeSequence(sequence string) string {
	var sb strings.Builder
	for _, base := range sequence {
		switch base {
		case 'A':
			sb.WriteString(tml.Sprintf("<bg-red>A</bg-red>"))
		case 'T':
			sb.WriteString(tml.Sprintf("<bg-green>T</bg-green>"))
		case 'G':
			sb.WriteString(tml.Sprintf("<bg-yellow>G</bg-yellow>"))
		case 'C':
			sb.WriteString(tml.Sprintf("<bg-blue>C</bg-blue>"))
		default:
			sb.WriteString(tml.Sprintf("<darkgrey>%c</darkgrey>", base))
		}
	}
	return sb.String()
}
