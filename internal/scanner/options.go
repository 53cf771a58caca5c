package scanner

import (
	"fmt"

	"textanalyzer/internal/diag"
)

const (
	// DefaultBufferSize is the size of the block buffer.
	DefaultBufferSize = 8192
	// DefaultMaxTokenLength caps a single token, in runes.
	DefaultMaxTokenLength = 100000
	// minBufferSize keeps room for a dash plus a full multibyte rune of lookahead.
	minBufferSize = 8
)

// WordClass decides which runes continue a word.
type WordClass uint8

const (
	// WordsLetters: letters, apostrophe, Unicode dash punctuation.
	WordsLetters WordClass = iota
	// WordsAlnum additionally lets digits continue a word ("abc123").
	WordsAlnum
)

var wordClassNames = [...]string{
	WordsLetters: "letters",
	WordsAlnum:   "alnum",
}

func (c WordClass) String() string {
	if int(c) < len(wordClassNames) {
		return wordClassNames[c]
	}
	return fmt.Sprintf("WordClass(%d)", c)
}

// ParseWordClass maps a config value to a WordClass.
func ParseWordClass(s string) (WordClass, error) {
	for i, name := range wordClassNames {
		if name == s {
			return WordClass(i), nil
		}
	}
	return WordsLetters, fmt.Errorf("unknown word class %q (want letters|alnum)", s)
}

// NumberMode decides what happens to a minus sign inside a digit run.
type NumberMode uint8

const (
	// NumbersSplit ends the number before the minus: "12-3" -> 12, -3.
	NumbersSplit NumberMode = iota
	// NumbersStrict rejects the whole run with ErrMalformedNumber.
	NumbersStrict
)

var numberModeNames = [...]string{
	NumbersSplit:  "split",
	NumbersStrict: "strict",
}

func (m NumberMode) String() string {
	if int(m) < len(numberModeNames) {
		return numberModeNames[m]
	}
	return fmt.Sprintf("NumberMode(%d)", m)
}

// ParseNumberMode maps a config value to a NumberMode.
func ParseNumberMode(s string) (NumberMode, error) {
	for i, name := range numberModeNames {
		if name == s {
			return NumberMode(i), nil
		}
	}
	return NumbersSplit, fmt.Errorf("unknown number mode %q (want split|strict)", s)
}

// Options настраивает сканер. Нулевые значения выбирают значения по умолчанию.
type Options struct {
	BufferSize     int // байты; 0 -> DefaultBufferSize
	MaxTokenLength int // руны; 0 -> DefaultMaxTokenLength
	Words          WordClass
	Numbers        NumberMode
	EmitSpace      bool          // выдавать token.Space вместо пропуска пробелов
	Reporter       diag.Reporter // может быть nil
}

// normalized fills defaults and panics on impossible values.
func (o Options) normalized() Options {
	if o.BufferSize < 0 {
		panic(fmt.Errorf("scanner: negative buffer size %d", o.BufferSize))
	}
	if o.MaxTokenLength < 0 {
		panic(fmt.Errorf("scanner: negative max token length %d", o.MaxTokenLength))
	}
	if o.BufferSize == 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.BufferSize < minBufferSize {
		o.BufferSize = minBufferSize
	}
	if o.MaxTokenLength == 0 {
		o.MaxTokenLength = DefaultMaxTokenLength
	}
	return o
}
