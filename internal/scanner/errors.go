package scanner

import (
	"errors"
	"fmt"

	"textanalyzer/internal/source"
	"textanalyzer/internal/token"
)

var (
	// ErrClosed is returned by every read after Close.
	ErrClosed = errors.New("scanner: closed")
	// ErrTokenTooLong means a run exceeded Options.MaxTokenLength runes.
	ErrTokenTooLong = errors.New("scanner: token too long")
	// ErrMalformedNumber is returned in strict mode for a minus inside a digit run.
	ErrMalformedNumber = errors.New("scanner: malformed number")
	// ErrPendingPeek is returned by NextLine while a peeked token is buffered.
	ErrPendingPeek = errors.New("scanner: line read with a peeked token pending")
)

// TokenError describes a rejected run. The run has already been consumed,
// so the next call continues right after it.
type TokenError struct {
	Kind   token.Kind // kind the run would have had
	Span   source.Span
	Pos    source.LineCol
	Length int    // runes consumed
	Text   string // prefix of the run, at most MaxTokenLength runes
	Err    error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Detail())
}

// Detail is the message without the position.
func (e *TokenError) Detail() string {
	if errors.Is(e.Err, ErrTokenTooLong) {
		return fmt.Sprintf("%v (%d runes)", e.Err, e.Length)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Text)
}

func (e *TokenError) Unwrap() error { return e.Err }

// IsSkippable reports whether err leaves the scanner usable.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrTokenTooLong) || errors.Is(err, ErrMalformedNumber)
}
