package report

import (
	"strings"

	"github.com/golang/text/width"
)

// displayWidth counts terminal cells, treating wide and fullwidth runes as
// two cells.
func displayWidth(s string) int {
	size := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			size += 2
		default:
			size++
		}
	}
	return size
}

// padRight left-justifies s in a column of n cells. Longer values are kept
// whole.
func padRight(s string, n int) string {
	if w := displayWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
