package stats

import (
	"errors"
	"fmt"

	"textanalyzer/internal/intlist"
)

// ErrInconsistent is wrapped by every Restore validation failure.
var ErrInconsistent = errors.New("stats: inconsistent data")

// Restore replaces the contents with exported data. Words are stored as
// given. Every position must lie in [1, total], be strictly increasing per
// word and belong to exactly one word, and the counts must add up to total.
func (a *Accumulator) Restore(total int, entries []Entry) error {
	if total < 0 || total > maxPosition {
		return fmt.Errorf("%w: total %d out of range", ErrInconsistent, total)
	}
	seen := make([]bool, total+1)
	fresh := make(map[string]*intlist.IntList, len(entries))
	order := make([]string, 0, len(entries))
	sum := 0
	for _, e := range entries {
		if e.Word == "" {
			return fmt.Errorf("%w: empty word", ErrInconsistent)
		}
		if _, dup := fresh[e.Word]; dup {
			return fmt.Errorf("%w: duplicate word %q", ErrInconsistent, e.Word)
		}
		if e.Positions == nil || e.Positions.IsEmpty() {
			return fmt.Errorf("%w: word %q has no positions", ErrInconsistent, e.Word)
		}
		prev := int32(0)
		for _, p := range e.Positions.All() {
			if p <= prev {
				return fmt.Errorf("%w: word %q positions not increasing at %d", ErrInconsistent, e.Word, p)
			}
			if int(p) > total {
				return fmt.Errorf("%w: word %q position %d beyond total %d", ErrInconsistent, e.Word, p, total)
			}
			if seen[p] {
				return fmt.Errorf("%w: position %d used twice", ErrInconsistent, p)
			}
			seen[p] = true
			prev = p
		}
		sum += e.Positions.Len()
		fresh[e.Word] = e.Positions.Clone()
		order = append(order, e.Word)
	}
	if sum != total {
		return fmt.Errorf("%w: counts add up to %d, total is %d", ErrInconsistent, sum, total)
	}
	if len(order) == 0 {
		order = nil // как у свежего аккумулятора
	}
	a.entries = fresh
	a.order = order
	a.total = total
	return nil
}
