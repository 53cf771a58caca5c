package export

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"textanalyzer/internal/stats"
)

// WriteCounts writes "<word> <count>" lines in the order of entries.
func WriteCounts(w io.Writer, entries []stats.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if err := checkWord(e.Word); err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s %d\n", e.Word, e.Count())
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write counts: %w", err)
	}
	return nil
}

// WriteLengths writes "<length> <count>" lines ascending by length.
func WriteLengths(w io.Writer, dist map[int]int) error {
	lengths := make([]int, 0, len(dist))
	for l := range dist {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)
	bw := bufio.NewWriter(w)
	for _, l := range lengths {
		fmt.Fprintf(bw, "%d %d\n", l, dist[l])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write lengths: %w", err)
	}
	return nil
}
