package textstat_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"textanalyzer/internal/scanner"
	"textanalyzer/internal/textstat"
)

const sample = "Это тестовый текст.\n" +
	"Он содержит несколько предложений.\n" +
	"И несколько слов для анализа статистики.\n" +
	"Hello World! Привет мир!"

func TestAnalyzeSample(t *testing.T) {
	st, err := textstat.AnalyzeString(sample, textstat.Options{})
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"lines", st.Lines, 4},
		{"words", st.Words, 17},
		{"unique", st.UniqueWords, 16},
		{"sentences", st.Sentences, 5},
		{"digits", st.Digits, 0},
		{"punctuation", st.Punctuation, 5},
		{"whitespace", st.Whitespace, 13},
		{"max frequency", st.MaxFrequency, 2},
		{"chars", st.Chars, 117},
		{"letters", st.Letters, 99},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if st.Chars != st.Letters+st.Whitespace+st.Punctuation+st.Digits {
		t.Errorf("char classes do not add up: %+v", st)
	}
	if !reflect.DeepEqual(st.MostFrequent, []string{"несколько"}) {
		t.Errorf("most frequent = %v", st.MostFrequent)
	}
	if !reflect.DeepEqual(st.Longest, []string{"предложений"}) {
		t.Errorf("longest = %v", st.Longest)
	}
	if !reflect.DeepEqual(st.Shortest, []string{"и"}) {
		t.Errorf("shortest = %v", st.Shortest)
	}
	if st.LineLengths.Len() != 4 || st.LineLengths.Sum() != int64(st.Chars) {
		t.Errorf("line lengths %v vs chars %d", st.LineLengths, st.Chars)
	}
}

func TestSentenceRules(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"no terminator", 1},
		{"One. Two! Three?", 3},
		{"One. Two", 2},
		{"Ends here.\n", 1},
		{"...", 3},
		{"12 34", 1}, // строка без точки всё равно предложение
	}
	for _, tt := range tests {
		st, err := textstat.AnalyzeString(tt.text, textstat.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if st.Sentences != tt.want {
			t.Errorf("%q: sentences = %d, want %d", tt.text, st.Sentences, tt.want)
		}
	}
}

func TestAverages(t *testing.T) {
	st, err := textstat.AnalyzeString("ab cdef\nx.", textstat.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := st.AvgWordLength(); got != 7.0/3 {
		t.Errorf("avg word length = %v", got)
	}
	if got := st.AvgLineLength(); got != 4.5 {
		t.Errorf("avg line length = %v", got)
	}
	if got := st.AvgSentenceLength(); got != 3 {
		t.Errorf("avg sentence length = %v", got)
	}
	if !reflect.DeepEqual(st.Lengths(), []int{1, 2, 4}) {
		t.Errorf("lengths = %v", st.Lengths())
	}
	empty, _ := textstat.AnalyzeString("", textstat.Options{})
	if empty.AvgWordLength() != 0 || empty.AvgLineLength() != 0 || empty.AvgSentenceLength() != 0 {
		t.Errorf("averages of empty text must be 0")
	}
}

func TestSkippedTokens(t *testing.T) {
	text := strings.Repeat("z", 20) + " ok"
	st, err := textstat.AnalyzeString(text, textstat.Options{Scanner: scanner.Options{MaxTokenLength: 10}})
	if err != nil {
		t.Fatal(err)
	}
	if st.Skipped != 1 || st.Words != 1 {
		t.Fatalf("skipped=%d words=%d", st.Skipped, st.Words)
	}
}

func TestReportSections(t *testing.T) {
	st, err := textstat.AnalyzeString(sample, textstat.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := st.Report(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"=== TEXT STATISTICS ===",
		"TOTALS:",
		"Words:" + strings.Repeat(" ", 8) + "17",
		"AVERAGES:",
		"LONGEST WORDS:",
		"SHORTEST WORDS:",
		"MOST FREQUENT WORDS:",
		`"несколько"`,
		"WORD LENGTH DISTRIBUTION:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	buf.Reset()
	if err := st.WriteFrequencies(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "WORD FREQUENCY:\nнесколько: 2\n") {
		t.Errorf("frequencies = %q", buf.String())
	}
	if st.Summary() != "Text: 117 chars, 17 words, 4 lines, 16 unique words" {
		t.Errorf("summary = %q", st.Summary())
	}
}
