package export

import (
	"cmp"
	"slices"

	"textanalyzer/internal/stats"
)

// sortByFirstPosition restores first-seen order from position data.
func sortByFirstPosition(entries []stats.Entry) {
	slices.SortFunc(entries, func(a, b stats.Entry) int {
		fa, _ := a.Positions.Get(0)
		fb, _ := b.Positions.Get(0)
		return cmp.Compare(fa, fb)
	})
}
