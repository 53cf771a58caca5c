package diagfmt

import (
	"encoding/json"
	"io"
	"maps"
	"slices"
	"strconv"

	"textanalyzer/internal/textstat"
)

// TextStatsJSON is the JSON shape of textstat.Stats.
type TextStatsJSON struct {
	Chars       int `json:"chars"`
	Letters     int `json:"letters"`
	Digits      int `json:"digits"`
	Whitespace  int `json:"whitespace"`
	Punctuation int `json:"punctuation"`
	Lines       int `json:"lines"`
	Sentences   int `json:"sentences"`
	Words       int `json:"words"`
	UniqueWords int `json:"unique_words"`
	Skipped     int `json:"skipped,omitempty"`

	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgLineLength     float64 `json:"avg_line_length"`

	Longest      []string `json:"longest"`
	Shortest     []string `json:"shortest"`
	MostFrequent []string `json:"most_frequent"`
	MaxFrequency int      `json:"max_frequency"`

	// ключи: длина слова в рунах
	LengthDistribution map[string]int `json:"length_distribution"`
	CharFrequency      map[string]int `json:"char_frequency"`
}

// BuildTextStats converts st into its JSON shape.
func BuildTextStats(st *textstat.Stats) TextStatsJSON {
	out := TextStatsJSON{
		Chars:              st.Chars,
		Letters:            st.Letters,
		Digits:             st.Digits,
		Whitespace:         st.Whitespace,
		Punctuation:        st.Punctuation,
		Lines:              st.Lines,
		Sentences:          st.Sentences,
		Words:              st.Words,
		UniqueWords:        st.UniqueWords,
		Skipped:            st.Skipped,
		AvgWordLength:      st.AvgWordLength(),
		AvgSentenceLength:  st.AvgSentenceLength(),
		AvgLineLength:      st.AvgLineLength(),
		Longest:            nonNil(st.Longest),
		Shortest:           nonNil(st.Shortest),
		MostFrequent:       nonNil(st.MostFrequent),
		MaxFrequency:       st.MaxFrequency,
		LengthDistribution: make(map[string]int, len(st.LengthDistribution)),
		CharFrequency:      make(map[string]int, len(st.CharFrequency)),
	}
	for _, n := range slices.Sorted(maps.Keys(st.LengthDistribution)) {
		out.LengthDistribution[strconv.Itoa(n)] = st.LengthDistribution[n]
	}
	for r, n := range st.CharFrequency {
		out.CharFrequency[string(r)] = n
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// TextStats writes st as indented JSON.
func TextStats(w io.Writer, st *textstat.Stats) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTextStats(st))
}
