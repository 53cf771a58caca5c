// Package textstat computes whole-text statistics: character classes,
// lines, sentences, word counts and length distributions, plus derived
// longest/shortest/most-frequent words and averages.
package textstat

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/scanner"
	"textanalyzer/internal/stats"
	"textanalyzer/internal/token"
)

// Options configures Analyze.
type Options struct {
	Scanner scanner.Options
	Stats   stats.Options
}

// Stats is the result of Analyze. Character counts are in runes and
// exclude line terminators.
type Stats struct {
	Chars       int
	Letters     int
	Digits      int
	Whitespace  int
	Punctuation int
	Lines       int
	Sentences   int
	Words       int
	UniqueWords int
	Skipped     int // отброшенные слишком длинные токены

	CharFrequency      map[rune]int
	LengthDistribution map[int]int // длина слова в рунах -> вхождения
	LineLengths        *intlist.IntList

	Longest      []string
	Shortest     []string
	MostFrequent []string
	MaxFrequency int

	Vocabulary *stats.Accumulator

	wordRunes int
}

func newStats(opts Options) *Stats {
	return &Stats{
		CharFrequency:      make(map[rune]int),
		LengthDistribution: make(map[int]int),
		LineLengths:        intlist.New(),
		Vocabulary:         stats.New(opts.Stats),
	}
}

// Analyze reads r line by line once.
func Analyze(r io.Reader, opts Options) (*Stats, error) {
	st := newStats(opts)
	lines := scanner.New(r, opts.Scanner)
	last := ""
	for {
		line, ok, err := lines.NextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := st.addLine(line, opts.Scanner); err != nil {
			return nil, fmt.Errorf("line %d: %w", st.Lines, err)
		}
		last = line
	}
	if st.Lines > 0 && last != "" && !endsSentence(last) {
		st.Sentences++
	}
	st.derive()
	return st, nil
}

// AnalyzeString is Analyze over an in-memory text.
func AnalyzeString(text string, opts Options) (*Stats, error) {
	return Analyze(strings.NewReader(text), opts)
}

func (st *Stats) addLine(line string, sopts scanner.Options) error {
	st.Lines++
	n := 0
	for _, r := range line {
		n++
		st.CharFrequency[r]++
		switch {
		case unicode.IsSpace(r):
			st.Whitespace++
		case unicode.IsLetter(r):
			st.Letters++
		case unicode.IsDigit(r):
			st.Digits++
		case unicode.IsPunct(r):
			st.Punctuation++
		}
		if r == '.' || r == '!' || r == '?' {
			st.Sentences++
		}
	}
	st.Chars += n
	st.LineLengths.Add(int32(min(n, intlist.MaxCapacity)))

	words := scanner.NewString(line, sopts)
	for tok, err := range words.Tokens() {
		if err != nil {
			if scanner.IsSkippable(err) {
				st.Skipped++
				continue
			}
			return err
		}
		if tok.Kind != token.Word {
			continue
		}
		l := tok.RuneLen()
		st.Words++
		st.wordRunes += l
		st.LengthDistribution[l]++
		st.Vocabulary.AddToken(tok)
	}
	return nil
}

func endsSentence(line string) bool {
	r, _ := utf8.DecodeLastRuneInString(line)
	return r == '.' || r == '!' || r == '?'
}

// derive fills the fields computed from the vocabulary.
func (st *Stats) derive() {
	st.UniqueWords = st.Vocabulary.Distinct()
	maxLen, minLen := 0, 0
	for _, e := range st.Vocabulary.Entries() {
		l := utf8.RuneCountInString(e.Word)
		switch {
		case l > maxLen:
			maxLen = l
			st.Longest = []string{e.Word}
		case l == maxLen:
			st.Longest = append(st.Longest, e.Word)
		}
		switch {
		case minLen == 0 || l < minLen:
			minLen = l
			st.Shortest = []string{e.Word}
		case l == minLen:
			st.Shortest = append(st.Shortest, e.Word)
		}
		switch c := e.Count(); {
		case c > st.MaxFrequency:
			st.MaxFrequency = c
			st.MostFrequent = []string{e.Word}
		case c == st.MaxFrequency:
			st.MostFrequent = append(st.MostFrequent, e.Word)
		}
	}
	if st.Sentences == 0 && st.Words > 0 {
		st.Sentences = 1
	}
}

// AvgWordLength is the mean word length in runes.
func (st *Stats) AvgWordLength() float64 {
	if st.Words == 0 {
		return 0
	}
	return float64(st.wordRunes) / float64(st.Words)
}

// AvgSentenceLength is the mean number of words per sentence.
func (st *Stats) AvgSentenceLength() float64 {
	if st.Sentences == 0 {
		return 0
	}
	return float64(st.Words) / float64(st.Sentences)
}

// AvgLineLength is the mean line length in runes.
func (st *Stats) AvgLineLength() float64 {
	if st.Lines == 0 {
		return 0
	}
	return float64(st.LineLengths.Sum()) / float64(st.Lines)
}

// Lengths returns the word lengths present, ascending.
func (st *Stats) Lengths() []int {
	out := make([]int, 0, len(st.LengthDistribution))
	for l := range st.LengthDistribution {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Summary is a one-line description.
func (st *Stats) Summary() string {
	return fmt.Sprintf("Text: %d chars, %d words, %d lines, %d unique words",
		st.Chars, st.Words, st.Lines, st.UniqueWords)
}

func (st *Stats) String() string { return st.Summary() }
