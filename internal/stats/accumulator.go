// Package stats accumulates word frequencies and 1-based word positions.
//
// Positions are the value of the running word counter at the moment a word
// was added, so every position in an Accumulator is unique and each word's
// positions are strictly increasing. Words keep first-seen order.
package stats

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"fortio.org/safecast"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/token"
)

// ErrPositionOverflow means the word counter would leave the int32 range.
var ErrPositionOverflow = errors.New("stats: word position overflows int32")

// maxPosition: позиций больше не помещается в IntList.
const maxPosition = math.MaxInt32

// Entry is one distinct word and the positions it occurred at.
type Entry struct {
	Word      string
	Positions *intlist.IntList
}

// Count is the frequency of the word.
func (e Entry) Count() int { return e.Positions.Len() }

// Accumulator is single-owner and unsynchronized.
type Accumulator struct {
	norm    *normalizer
	opts    Options
	entries map[string]*intlist.IntList
	order   []string
	total   int
}

// New creates an empty accumulator.
func New(opts Options) *Accumulator {
	return &Accumulator{
		norm:    newNormalizer(opts),
		opts:    opts,
		entries: make(map[string]*intlist.IntList),
	}
}

// Options returns the options the accumulator was created with.
func (a *Accumulator) Options() Options { return a.opts }

// AddWord normalizes raw and records it at the next position. Words that
// normalize to "" are ignored and do not advance the counter.
func (a *Accumulator) AddWord(raw string) {
	word := a.norm.apply(raw)
	if word == "" {
		return
	}
	if a.total >= maxPosition {
		panic(fmt.Errorf("%w: %d words", ErrPositionOverflow, a.total))
	}
	a.total++
	list, ok := a.entries[word]
	if !ok {
		list = intlist.WithCapacity(1)
		a.entries[word] = list
		a.order = append(a.order, word)
	}
	list.Add(int32(a.total))
}

// AddToken feeds Word tokens and ignores every other kind.
func (a *Accumulator) AddToken(tok token.Token) {
	if tok.Kind == token.Word {
		a.AddWord(tok.Text)
	}
}

// Frequency returns how often word occurred; the lookup key is normalized.
func (a *Accumulator) Frequency(word string) int {
	if list, ok := a.entries[a.norm.apply(word)]; ok {
		return list.Len()
	}
	return 0
}

// Entry looks up a word (normalized). The returned positions are shared.
func (a *Accumulator) Entry(word string) (Entry, bool) {
	key := a.norm.apply(word)
	list, ok := a.entries[key]
	if !ok {
		return Entry{}, false
	}
	return Entry{Word: key, Positions: list}, true
}

// Words returns the distinct words in first-seen order, or nil when
// nothing has been counted.
func (a *Accumulator) Words() []string {
	if len(a.order) == 0 {
		return nil
	}
	return slices.Clone(a.order)
}

// Entries returns all entries in first-seen order.
func (a *Accumulator) Entries() []Entry {
	out := make([]Entry, 0, len(a.order))
	for _, w := range a.order {
		out = append(out, Entry{Word: w, Positions: a.entries[w]})
	}
	return out
}

// WordsByFrequency sorts by frequency descending, then word ascending.
func (a *Accumulator) WordsByFrequency() []Entry {
	out := a.Entries()
	slices.SortFunc(out, func(x, y Entry) int {
		if c := cmp.Compare(y.Count(), x.Count()); c != 0 {
			return c
		}
		return cmp.Compare(x.Word, y.Word)
	})
	return out
}

// TopWords returns at most n entries of WordsByFrequency.
func (a *Accumulator) TopWords(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	all := a.WordsByFrequency()
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// LengthDistribution maps word length in runes to the number of word
// occurrences of that length.
func (a *Accumulator) LengthDistribution() map[int]int {
	dist := make(map[int]int)
	for _, w := range a.order {
		dist[utf8.RuneCountInString(w)] += a.entries[w].Len()
	}
	return dist
}

// Total is the number of words added.
func (a *Accumulator) Total() int { return a.total }

// Distinct is the number of distinct words.
func (a *Accumulator) Distinct() int { return len(a.order) }

// Clear empties the accumulator.
func (a *Accumulator) Clear() {
	clear(a.entries)
	a.order = a.order[:0]
	a.total = 0
}

// Merge appends other as if its words had been added after this
// accumulator's words: other's positions are shifted by Total(). other's
// keys are taken as already normalized.
func (a *Accumulator) Merge(other *Accumulator) error {
	if other == nil || other.total == 0 {
		return nil
	}
	if other == a {
		other = a.Clone()
	}
	if a.total > maxPosition-other.total {
		return fmt.Errorf("%w: %d + %d words", ErrPositionOverflow, a.total, other.total)
	}
	shift, err := safecast.Conv[int32](a.total)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPositionOverflow, err)
	}
	for _, w := range other.order {
		src := other.entries[w]
		dst, ok := a.entries[w]
		if !ok {
			dst = intlist.WithCapacity(src.Len())
			a.entries[w] = dst
			a.order = append(a.order, w)
		}
		for _, p := range src.All() {
			dst.Add(p + shift)
		}
	}
	a.total += other.total
	return nil
}

// Clone returns an independent deep copy.
func (a *Accumulator) Clone() *Accumulator {
	c := New(a.opts)
	c.order = slices.Clone(a.order)
	c.total = a.total
	for w, list := range a.entries {
		c.entries[w] = list.Clone()
	}
	return c
}

// Trim releases spare capacity of every position list.
func (a *Accumulator) Trim() {
	for _, list := range a.entries {
		list.Trim()
	}
}

func (a *Accumulator) String() string {
	return fmt.Sprintf("Accumulator[total=%d, distinct=%d]", a.total, len(a.order))
}
