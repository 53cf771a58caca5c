package scanner

import (
	"unicode/utf8"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/source"
	"textanalyzer/internal/token"
)

func (s *Scanner) scanWord() (token.Token, error) {
	start := s.cur.position()
	s.text = s.text[:0]
	n := s.consumeRun(0, s.isWordRune)
	return s.finish(token.Word, start, n, nil)
}

// scanPunct: один символ, не слово и не число.
func (s *Scanner) scanPunct(size int) token.Token {
	start := s.cur.position()
	text := string(s.cur.advance(size))
	return token.Token{
		Kind: token.Punct,
		Span: source.Span{Start: start.Offset, End: s.cur.off},
		Pos:  start.LineCol,
		Text: text,
	}
}

// scanInvalid consumes one byte that is not valid UTF-8.
func (s *Scanner) scanInvalid() token.Token {
	start := s.cur.position()
	b := s.cur.advance(1)[0]
	sp := source.Span{Start: start.Offset, End: s.cur.off}
	s.report(diag.ScanInvalidUTF8, diag.SevWarning, sp, start.LineCol, "invalid UTF-8 byte 0x%02x", b)
	return token.Token{Kind: token.Punct, Span: sp, Pos: start.LineCol, Text: string(utf8.RuneError)}
}
