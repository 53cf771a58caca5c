package stats_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"unicode"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/stats"
	"textanalyzer/internal/token"
)

func feed(acc *stats.Accumulator, text string) *stats.Accumulator {
	for _, w := range strings.Fields(text) {
		acc.AddWord(w)
	}
	return acc
}

func positions(t *testing.T, acc *stats.Accumulator, word string) []int32 {
	t.Helper()
	e, ok := acc.Entry(word)
	if !ok {
		t.Fatalf("word %q not found", word)
	}
	return e.Positions.ToArray()
}

func TestToBeOrNotToBe(t *testing.T) {
	acc := feed(stats.New(stats.Options{}), "To be or not to be")

	if got := acc.Words(); !reflect.DeepEqual(got, []string{"to", "be", "or", "not"}) {
		t.Fatalf("first-seen order = %v", got)
	}
	freq := map[string]int{"to": 2, "be": 2, "or": 1, "not": 1}
	for w, n := range freq {
		if got := acc.Frequency(w); got != n {
			t.Errorf("Frequency(%q) = %d, want %d", w, got, n)
		}
	}
	if acc.Frequency("TO") != 2 {
		t.Errorf("lookup key must be normalized")
	}
	wantPos := map[string][]int32{"to": {1, 5}, "be": {2, 6}, "or": {3}, "not": {4}}
	for w, want := range wantPos {
		if got := positions(t, acc, w); !reflect.DeepEqual(got, want) {
			t.Errorf("positions(%q) = %v, want %v", w, got, want)
		}
	}
	if acc.Total() != 6 || acc.Distinct() != 4 {
		t.Fatalf("total=%d distinct=%d", acc.Total(), acc.Distinct())
	}
	if acc.Frequency("missing") != 0 {
		t.Fatalf("unseen word must be 0")
	}
}

func TestEmptyWordsIgnored(t *testing.T) {
	acc := stats.New(stats.Options{})
	acc.AddWord("")
	acc.AddWord("   ")
	acc.AddWord(" Tab\t")
	if acc.Total() != 1 || acc.Frequency("tab") != 1 {
		t.Fatalf("total=%d", acc.Total())
	}
	if got := positions(t, acc, "tab"); got[0] != 1 {
		t.Fatalf("empty words must not advance the counter: %v", got)
	}
}

func TestAddTokenOnlyWords(t *testing.T) {
	acc := stats.New(stats.Options{})
	acc.AddToken(token.Token{Kind: token.Word, Text: "Go"})
	acc.AddToken(token.Token{Kind: token.Number, Text: "42"})
	acc.AddToken(token.Token{Kind: token.Punct, Text: "!"})
	if acc.Total() != 1 || acc.Frequency("go") != 1 {
		t.Fatalf("total=%d", acc.Total())
	}
}

func TestMergeEquivalentToSequential(t *testing.T) {
	parts := []string{
		"the cat sat on the mat",
		"The dog ate the cat",
		"",
		"mat dog mat",
	}
	direct := stats.New(stats.Options{})
	merged := stats.New(stats.Options{})
	for _, p := range parts {
		feed(direct, p)
		part := feed(stats.New(stats.Options{}), p)
		if err := merged.Merge(part); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(direct.Words(), merged.Words()) {
		t.Fatalf("order: %v vs %v", direct.Words(), merged.Words())
	}
	if direct.Total() != merged.Total() {
		t.Fatalf("total: %d vs %d", direct.Total(), merged.Total())
	}
	for _, w := range direct.Words() {
		if !reflect.DeepEqual(positions(t, direct, w), positions(t, merged, w)) {
			t.Errorf("positions of %q differ", w)
		}
	}
}

func TestMergeAssociative(t *testing.T) {
	a := func() *stats.Accumulator { return feed(stats.New(stats.Options{}), "x y x") }
	b := func() *stats.Accumulator { return feed(stats.New(stats.Options{}), "y z") }
	c := func() *stats.Accumulator { return feed(stats.New(stats.Options{}), "z x") }

	left := a()
	_ = left.Merge(b())
	_ = left.Merge(c())

	bc := b()
	_ = bc.Merge(c())
	right := a()
	_ = right.Merge(bc)

	for _, w := range []string{"x", "y", "z"} {
		if !reflect.DeepEqual(positions(t, left, w), positions(t, right, w)) {
			t.Errorf("(a+b)+c != a+(b+c) for %q", w)
		}
	}
}

func TestMergeSelf(t *testing.T) {
	acc := feed(stats.New(stats.Options{}), "a b")
	if err := acc.Merge(acc); err != nil {
		t.Fatal(err)
	}
	if got := positions(t, acc, "a"); !reflect.DeepEqual(got, []int32{1, 3}) {
		t.Fatalf("self merge positions = %v", got)
	}
}

func TestWordsByFrequencyAndTop(t *testing.T) {
	acc := feed(stats.New(stats.Options{}), "b a c b a b d")
	var got []string
	for _, e := range acc.WordsByFrequency() {
		got = append(got, e.Word)
	}
	if !reflect.DeepEqual(got, []string{"b", "a", "c", "d"}) {
		t.Fatalf("by frequency = %v", got)
	}
	if top := acc.TopWords(2); len(top) != 2 || top[0].Word != "b" || top[0].Count() != 3 {
		t.Fatalf("TopWords(2) = %v", top)
	}
	if len(acc.TopWords(0)) != 0 || len(acc.TopWords(-3)) != 0 {
		t.Fatalf("TopWords(n<=0) must be empty")
	}
	if len(acc.TopWords(100)) != 4 {
		t.Fatalf("TopWords beyond distinct")
	}
}

func TestTopWordsHelloScenario(t *testing.T) {
	text := "To be or not to be, that is the question!\nHello world, hello Java!"
	acc := stats.New(stats.Options{})
	for _, w := range strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }) {
		acc.AddWord(w)
	}
	var got []string
	for _, e := range acc.TopWords(5) {
		got = append(got, fmt.Sprintf("%s %d", e.Word, e.Count()))
	}
	want := []string{"be 2", "hello 2", "to 2", "is 1", "java 1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top 5 = %v, want %v", got, want)
	}
}

func TestClearIdempotent(t *testing.T) {
	acc := feed(stats.New(stats.Options{}), "a b a")
	acc.Clear()
	acc.Clear()
	if acc.Total() != 0 || acc.Distinct() != 0 || len(acc.Words()) != 0 {
		t.Fatalf("not empty after Clear: %v", acc)
	}
	acc.AddWord("c")
	if got := positions(t, acc, "c"); got[0] != 1 {
		t.Fatalf("counter not reset: %v", got)
	}
}

func TestNormalizeModes(t *testing.T) {
	tests := []struct {
		name  string
		opts  stats.Options
		words string
		want  []string
	}{
		{"lower", stats.Options{}, "Straße STRASSE straße", []string{"straße", "strasse"}},
		{"fold", stats.Options{Normalize: stats.NormalizeFold}, "Straße STRASSE straße", []string{"strasse"}},
		{"none", stats.Options{Normalize: stats.NormalizeNone}, "Go go GO", []string{"Go", "go", "GO"}},
		{"nfc", stats.Options{NFC: true}, "caf\u00e9 cafe\u0301", []string{"caf\u00e9"}},
		{"no nfc", stats.Options{}, "caf\u00e9 cafe\u0301", []string{"caf\u00e9", "cafe\u0301"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := feed(stats.New(tt.opts), tt.words)
			if got := acc.Words(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("words = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNormalizeMode(t *testing.T) {
	for _, name := range []string{"lower", "fold", "none"} {
		m, err := stats.ParseNormalizeMode(name)
		if err != nil || m.String() != name {
			t.Errorf("ParseNormalizeMode(%q) = %v, %v", name, m, err)
		}
	}
	if _, err := stats.ParseNormalizeMode("upper"); err == nil {
		t.Errorf("expected error")
	}
}

func TestLengthDistribution(t *testing.T) {
	acc := feed(stats.New(stats.Options{}), "a bb bb ccc мир")
	want := map[int]int{1: 1, 2: 2, 3: 2}
	if got := acc.LengthDistribution(); !reflect.DeepEqual(got, want) {
		t.Fatalf("distribution = %v, want %v", got, want)
	}
}

func TestRestore(t *testing.T) {
	acc := stats.New(stats.Options{})
	err := acc.Restore(3, []stats.Entry{
		{Word: "x", Positions: intlist.Of(1, 3)},
		{Word: "y", Positions: intlist.Of(2)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if acc.Total() != 3 || acc.Frequency("x") != 2 || !reflect.DeepEqual(acc.Words(), []string{"x", "y"}) {
		t.Fatalf("restored %v", acc)
	}
	acc.AddWord("y")
	if got := positions(t, acc, "y"); !reflect.DeepEqual(got, []int32{2, 4}) {
		t.Fatalf("positions after restore = %v", got)
	}

	bad := []struct {
		name    string
		total   int
		entries []stats.Entry
	}{
		{"decreasing", 2, []stats.Entry{{Word: "x", Positions: intlist.Of(2, 1)}}},
		{"beyond total", 1, []stats.Entry{{Word: "x", Positions: intlist.Of(2)}}},
		{"shared position", 2, []stats.Entry{{Word: "x", Positions: intlist.Of(1)}, {Word: "y", Positions: intlist.Of(1)}}},
		{"count mismatch", 3, []stats.Entry{{Word: "x", Positions: intlist.Of(1, 2)}}},
		{"duplicate word", 2, []stats.Entry{{Word: "x", Positions: intlist.Of(1)}, {Word: "x", Positions: intlist.Of(2)}}},
		{"no positions", 0, []stats.Entry{{Word: "x", Positions: intlist.New()}}},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			fresh := stats.New(stats.Options{})
			if err := fresh.Restore(tt.total, tt.entries); !errors.Is(err, stats.ErrInconsistent) {
				t.Fatalf("err = %v, want ErrInconsistent", err)
			}
		})
	}
}

// Пустой аккумулятор выглядит одинаково, откуда бы он ни взялся.
func TestEmptyShapes(t *testing.T) {
	restored := stats.New(stats.Options{})
	if err := restored.Restore(0, nil); err != nil {
		t.Fatal(err)
	}
	cleared := feed(stats.New(stats.Options{}), "a b")
	cleared.Clear()
	fresh := stats.New(stats.Options{})
	for name, acc := range map[string]*stats.Accumulator{
		"restored": restored,
		"cleared":  cleared,
		"clone":    fresh.Clone(),
	} {
		t.Run(name, func(t *testing.T) {
			if !reflect.DeepEqual(acc.Words(), fresh.Words()) {
				t.Fatalf("Words() = %#v, want %#v", acc.Words(), fresh.Words())
			}
			if acc.Total() != 0 || acc.Distinct() != 0 {
				t.Fatalf("not empty: %v", acc)
			}
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	acc := feed(stats.New(stats.Options{}), "a b")
	c := acc.Clone()
	acc.AddWord("a")
	if c.Frequency("a") != 1 || acc.Frequency("a") != 2 {
		t.Fatalf("clone shares state")
	}
}
