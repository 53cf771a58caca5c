package token

import (
	"strconv"
	"unicode/utf8"

	"textanalyzer/internal/source"
)

// Token represents a single scanned token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Pos  source.LineCol
	Text string
}

// IsWord reports whether the token is a word.
func (t Token) IsWord() bool { return t.Kind == Word }

// IsNumber reports whether the token is a number.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsEOF reports whether the token marks the end of the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// RuneLen returns the length of the token text in runes.
func (t Token) RuneLen() int { return utf8.RuneCountInString(t.Text) }

// Int parses a Number token; other kinds yield strconv.ErrSyntax.
func (t Token) Int() (int, error) {
	if t.Kind != Number {
		return 0, &strconv.NumError{Func: "Int", Num: t.Text, Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(t.Text)
}
