// Package scanner turns a byte stream into word, number, punctuation and
// newline tokens using a fixed-size block buffer, so memory stays bounded
// by BufferSize plus MaxTokenLength regardless of input size.
package scanner

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"textanalyzer/internal/source"
	"textanalyzer/internal/token"
)

type lookahead struct {
	tok token.Token
	err error
}

// Scanner is a single-owner streaming tokenizer. It is not safe for
// concurrent use.
type Scanner struct {
	cur    cursor
	opts   Options
	closer io.Closer
	closed bool
	look   *lookahead // 1 элементный буфер для Peek
	text   []byte     // текст текущего токена, переживает перезаполнение буфера
}

// New creates a scanner over r. If r is an io.Closer, Close closes it.
func New(r io.Reader, opts Options) *Scanner {
	opts = opts.normalized()
	s := &Scanner{
		cur:  newCursor(r, opts.BufferSize),
		opts: opts,
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// NewString scans an in-memory string.
func NewString(text string, opts Options) *Scanner {
	return New(strings.NewReader(text), opts)
}

// NextToken returns the next token. At end of input it returns an EOF token
// with a nil error, and keeps doing so.
func (s *Scanner) NextToken() (token.Token, error) {
	if s.closed {
		return token.Token{}, ErrClosed
	}
	if s.look != nil {
		la := *s.look
		s.look = nil
		return la.tok, la.err
	}
	return s.scan()
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (token.Token, error) {
	if s.closed {
		return token.Token{}, ErrClosed
	}
	if s.look == nil {
		tok, err := s.scan()
		s.look = &lookahead{tok: tok, err: err}
	}
	return s.look.tok, s.look.err
}

// HasNextWord reports whether the next token is a word.
func (s *Scanner) HasNextWord() bool {
	tok, err := s.Peek()
	return err == nil && tok.Kind == token.Word
}

// HasNextInt reports whether the next token is a number.
func (s *Scanner) HasNextInt() bool {
	tok, err := s.Peek()
	return err == nil && tok.Kind == token.Number
}

// NextWord skips to the next word. ok is false at end of stream.
func (s *Scanner) NextWord() (word string, ok bool, err error) {
	for {
		tok, err := s.NextToken()
		if err != nil {
			return "", false, err
		}
		switch tok.Kind {
		case token.EOF:
			return "", false, nil
		case token.Word:
			return tok.Text, true, nil
		}
	}
}

// NextInt skips to the next number that fits in an int.
func (s *Scanner) NextInt() (n int, ok bool, err error) {
	for {
		tok, err := s.NextToken()
		if err != nil {
			return 0, false, err
		}
		switch tok.Kind {
		case token.EOF:
			return 0, false, nil
		case token.Number:
			v, perr := tok.Int()
			if perr != nil {
				continue
			}
			return v, true, nil
		}
	}
}

// Tokens iterates up to and excluding EOF. A skippable error is yielded and
// iteration continues; any other error is yielded last.
func (s *Scanner) Tokens() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := s.NextToken()
			if err != nil {
				if !yield(tok, err) || !IsSkippable(err) {
					return
				}
				continue
			}
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Pos is the position of the next unread byte (after a peeked token, if any).
func (s *Scanner) Pos() source.Pos { return s.cur.position() }

// Closed reports whether Close was called.
func (s *Scanner) Closed() bool { return s.closed }

// Close closes the underlying reader when it is an io.Closer. Later calls
// are no-ops.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.look = nil
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Scanner) String() string {
	p := s.cur.position()
	return fmt.Sprintf("Scanner[pos=%d, line=%d, col=%d, closed=%t]", p.Offset, p.Line, p.Col, s.closed)
}

// scan выбирает сканер по первой руне.
func (s *Scanner) scan() (token.Token, error) {
	for {
		r, size := s.cur.peekRune()
		if size == 0 {
			if err := s.cur.readErr(); err != nil {
				return token.Token{}, fmt.Errorf("scanner: read: %w", err)
			}
			return s.emptyToken(token.EOF), nil
		}

		switch {
		case r == '\n' || r == '\r':
			return s.scanNewline(), nil
		case isSpace(r):
			if s.opts.EmitSpace {
				return s.scanSpace()
			}
			s.skipSpace()
		case isDigit(r) || s.minusDigitAhead():
			return s.scanNumber()
		case r == utf8.RuneError && size == 1:
			return s.scanInvalid(), nil
		case s.isWordRune(r):
			return s.scanWord()
		default:
			return s.scanPunct(size), nil
		}
	}
}

func (s *Scanner) emptyToken(kind token.Kind) token.Token {
	p := s.cur.position()
	return token.Token{Kind: kind, Span: source.Span{Start: p.Offset, End: p.Offset}, Pos: p.LineCol}
}

// consumeRun съедает руны, пока accept истинно. n: уже накопленная длина;
// текст сверх MaxTokenLength не сохраняется, но руны продолжают потребляться.
func (s *Scanner) consumeRun(n int, accept func(rune) bool) int {
	for {
		r, size := s.cur.peekRune()
		if size == 0 || (r == utf8.RuneError && size == 1) || !accept(r) {
			return n
		}
		n = s.take(n, size)
	}
}

// take consumes one rune and appends it to the token text while under the limit.
func (s *Scanner) take(n, size int) int {
	b := s.cur.advance(size)
	if n < s.opts.MaxTokenLength {
		s.text = append(s.text, b...)
	}
	return n + 1
}

// finish builds the token for a completed run, or the error for an oversized one.
func (s *Scanner) finish(kind token.Kind, start source.Pos, n int, cause error) (token.Token, error) {
	sp := source.Span{Start: start.Offset, End: s.cur.off}
	text := string(s.text)
	if n > s.opts.MaxTokenLength {
		cause = ErrTokenTooLong
	}
	if cause != nil {
		return token.Token{Kind: token.Invalid, Span: sp, Pos: start.LineCol, Text: text},
			&TokenError{Kind: kind, Span: sp, Pos: start.LineCol, Length: n, Text: text, Err: cause}
	}
	return token.Token{Kind: kind, Span: sp, Pos: start.LineCol, Text: text}, nil
}
