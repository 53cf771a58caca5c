package textstat

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Report writes the multi-section human-readable report.
func (st *Stats) Report(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "=== TEXT STATISTICS ===\n\n")

	fmt.Fprintln(bw, "TOTALS:")
	rows := [][2]string{
		{"Characters", fmt.Sprint(st.Chars)},
		{"Letters", fmt.Sprint(st.Letters)},
		{"Digits", fmt.Sprint(st.Digits)},
		{"Whitespace", fmt.Sprint(st.Whitespace)},
		{"Punctuation", fmt.Sprint(st.Punctuation)},
		{"Lines", fmt.Sprint(st.Lines)},
		{"Words", fmt.Sprint(st.Words)},
		{"Unique words", fmt.Sprint(st.UniqueWords)},
		{"Sentences", fmt.Sprint(st.Sentences)},
	}
	if st.Skipped > 0 {
		rows = append(rows, [2]string{"Skipped tokens", fmt.Sprint(st.Skipped)})
	}
	writeRows(bw, rows)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "AVERAGES:")
	writeRows(bw, [][2]string{
		{"Word length", fmt.Sprintf("%.2f chars", st.AvgWordLength())},
		{"Sentence length", fmt.Sprintf("%.2f words", st.AvgSentenceLength())},
		{"Line length", fmt.Sprintf("%.2f chars", st.AvgLineLength())},
	})
	fmt.Fprintln(bw)

	writeWordList(bw, "LONGEST WORDS:", st.Longest)
	writeWordList(bw, "SHORTEST WORDS:", st.Shortest)

	if len(st.MostFrequent) > 0 && st.Words > 0 {
		fmt.Fprintln(bw, "MOST FREQUENT WORDS:")
		pct := float64(st.MaxFrequency) * 100 / float64(st.Words)
		width := maxWidth(st.MostFrequent) + 2
		for _, word := range st.MostFrequent {
			fmt.Fprintf(bw, "  %s %d times (%.1f%%)\n",
				runewidth.FillRight(fmt.Sprintf("%q", word), width), st.MaxFrequency, pct)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "WORD LENGTH DISTRIBUTION:")
	for _, l := range st.Lengths() {
		fmt.Fprintf(bw, "  %3d chars: %d words\n", l, st.LengthDistribution[l])
	}
	return bw.Flush()
}

// WriteFrequencies appends the "word: count" list, most frequent first.
func (st *Stats) WriteFrequencies(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "WORD FREQUENCY:")
	for _, e := range st.Vocabulary.WordsByFrequency() {
		fmt.Fprintf(bw, "%s: %d\n", e.Word, e.Count())
	}
	return bw.Flush()
}

func writeRows(w io.Writer, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", runewidth.FillRight(r[0]+":", width+1), r[1])
	}
}

func writeWordList(w io.Writer, title string, words []string) {
	if len(words) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	width := maxWidth(words) + 2
	for _, word := range words {
		fmt.Fprintf(w, "  %s (%d chars)\n", runewidth.FillRight(fmt.Sprintf("%q", word), width), utf8.RuneCountInString(word))
	}
	fmt.Fprintln(w)
}

// maxWidth: ширина в колонках терминала, а не в рунах: CJK занимает две.
func maxWidth(words []string) int {
	width := 0
	for _, w := range words {
		width = max(width, runewidth.StringWidth(w))
	}
	return width
}
