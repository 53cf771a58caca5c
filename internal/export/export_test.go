package export_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"textanalyzer/internal/export"
	"textanalyzer/internal/intlist"
	"textanalyzer/internal/stats"
)

func accOf(text string) *stats.Accumulator {
	acc := stats.New(stats.Options{})
	for _, w := range strings.Fields(text) {
		acc.AddWord(w)
	}
	return acc
}

// sameStats сравнивает порядок, частоты и позиции.
func sameStats(t *testing.T, want, got *stats.Accumulator) {
	t.Helper()
	if !reflect.DeepEqual(want.Words(), got.Words()) {
		t.Fatalf("words: want %v, got %v", want.Words(), got.Words())
	}
	if want.Total() != got.Total() {
		t.Fatalf("total: want %d, got %d", want.Total(), got.Total())
	}
	for _, w := range want.Words() {
		we, _ := want.Entry(w)
		ge, ok := got.Entry(w)
		if !ok || !we.Positions.Equal(ge.Positions) {
			t.Fatalf("positions of %q: want %v, got %v", w, we.Positions, ge.Positions)
		}
	}
}

func TestWritePositionsScenario(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WritePositions(&buf, accOf("To be or not to be That is the question!")); err != nil {
		t.Fatal(err)
	}
	want := "to 2 1 5\nbe 2 2 6\nor 1 3\nnot 1 4\nthat 1 7\nis 1 8\nthe 1 9\nquestion! 1 10\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPositionsRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"To be or not to be",
		"a b a c b a d e f a",
		"мама мыла раму мама",
	}
	for _, in := range inputs {
		orig := accOf(in)
		var buf bytes.Buffer
		if err := export.WritePositions(&buf, orig); err != nil {
			t.Fatal(err)
		}
		got, err := export.ParsePositions(&buf, stats.Options{})
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		sameStats(t, orig, got)
	}
}

func TestParsePositionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"missing count", "to\n", 1},
		{"bad count", "to x 1\n", 1},
		{"count mismatch", "to 1 1\nbe 2 2\n", 2},
		{"not increasing", "to 2 2 1\n", 1},
		{"bad position", "to 1 z\n", 1},
		{"position overflow", "to 1 99999999999\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.ParsePositions(strings.NewReader(tt.input), stats.Options{})
			var pe *export.ParseError
			if !errors.As(err, &pe) || !errors.Is(err, export.ErrBadRecord) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Fatalf("line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
	// позиции не покрывают 1..total
	if _, err := export.ParsePositions(strings.NewReader("to 1 3\n"), stats.Options{}); !errors.Is(err, stats.ErrInconsistent) {
		t.Fatalf("err = %v, want ErrInconsistent", err)
	}
}

func TestWriteRejectsSpaces(t *testing.T) {
	acc := stats.New(stats.Options{Normalize: stats.NormalizeNone})
	acc.AddWord("two words")
	if err := export.WritePositions(&bytes.Buffer{}, acc); !errors.Is(err, export.ErrUnencodable) {
		t.Fatalf("err = %v", err)
	}
	if err := export.WriteCounts(&bytes.Buffer{}, acc.Entries()); !errors.Is(err, export.ErrUnencodable) {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteCountsAndLengths(t *testing.T) {
	acc := accOf("b a b ccc")
	var buf bytes.Buffer
	if err := export.WriteCounts(&buf, acc.Entries()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "b 2\na 1\nccc 1\n" {
		t.Fatalf("counts = %q", buf.String())
	}
	buf.Reset()
	if err := export.WriteLengths(&buf, acc.LengthDistribution()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 3\n3 1\n" {
		t.Fatalf("lengths = %q", buf.String())
	}
}

func TestFrequencyCSV(t *testing.T) {
	acc := accOf("b a b c")
	var buf bytes.Buffer
	if err := export.WriteFrequencyCSV(&buf, acc); err != nil {
		t.Fatal(err)
	}
	want := "word,frequency,positions\nb,2,\"1 3\"\na,1,\"2\"\nc,1,\"4\"\n"
	if buf.String() != want {
		t.Fatalf("csv = %q, want %q", buf.String(), want)
	}
	got, err := export.ParseFrequencyCSV(&buf, stats.Options{})
	if err != nil {
		t.Fatal(err)
	}
	sameStats(t, acc, got)
}

// Поле positions всегда в кавычках, слово - только по правилам CSV.
func TestFrequencyCSVQuoting(t *testing.T) {
	tests := []struct {
		name    string
		entries []stats.Entry
		want    string
	}{
		{"plain words", []stats.Entry{
			{Word: "to", Positions: intlist.Of(1, 3, 5)},
			{Word: "be", Positions: intlist.Of(2, 6)},
			{Word: "or", Positions: intlist.Of(4)},
		}, "word,frequency,positions\nto,3,\"1 3 5\"\nbe,2,\"2 6\"\nor,1,\"4\"\n"},
		{"comma in word", []stats.Entry{{Word: "a,b", Positions: intlist.Of(1)}},
			"word,frequency,positions\n\"a,b\",1,\"1\"\n"},
		{"quote in word", []stats.Entry{{Word: `say"`, Positions: intlist.Of(1)}},
			"word,frequency,positions\n\"say\"\"\",1,\"1\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := stats.New(stats.Options{})
			total := 0
			for _, e := range tt.entries {
				total += e.Count()
			}
			if err := acc.Restore(total, tt.entries); err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := export.WriteFrequencyCSV(&buf, acc); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Fatalf("csv = %q, want %q", buf.String(), tt.want)
			}
			got, err := export.ParseFrequencyCSV(&buf, stats.Options{})
			if err != nil {
				t.Fatal(err)
			}
			sameStats(t, acc, got)
		})
	}
}

func TestParseFrequencyCSVErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"w,f,p\n",
		"word,frequency,positions\nx,2,1\n",
		"word,frequency,positions\nx,1\n",
	} {
		if _, err := export.ParseFrequencyCSV(strings.NewReader(in), stats.Options{}); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	orig := accOf("the quick brown fox jumps over the lazy dog the end")
	var buf bytes.Buffer
	if err := export.WriteSnapshot(&buf, orig); err != nil {
		t.Fatal(err)
	}
	got, err := export.ReadSnapshot(&buf, stats.Options{})
	if err != nil {
		t.Fatal(err)
	}
	sameStats(t, orig, got)

	path := filepath.Join(t.TempDir(), "stats.mp")
	if err := export.SaveSnapshot(path, orig); err != nil {
		t.Fatal(err)
	}
	loaded, err := export.LoadSnapshot(path, stats.Options{})
	if err != nil {
		t.Fatal(err)
	}
	sameStats(t, orig, loaded)
}

func TestSnapshotSchemaMismatch(t *testing.T) {
	s := export.NewSnapshot(accOf("a"))
	s.Schema = export.SnapshotSchema + 1
	raw, err := msgpack.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := export.ReadSnapshot(bytes.NewReader(raw), stats.Options{}); !errors.Is(err, export.ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
}
