package scanner

import (
	"textanalyzer/internal/source"
	"textanalyzer/internal/token"
)

// scanNewline принимает \n, \r\n и одиночный \r как один перевод строки.
// Одиночный \r (старые Mac-файлы) тоже считается переводом строки, не пробелом:
// это сознательное расширение, строки и позиции считаются так же, как для \n.
func (s *Scanner) scanNewline() token.Token {
	start := s.cur.position()
	size := 1
	text := "\n"
	if b, _ := s.cur.peekByte(0); b == '\r' {
		text = "\r"
		if nb, ok := s.cur.peekByte(1); ok && nb == '\n' {
			size = 2
			text = "\r\n"
		}
	}
	s.cur.newline(size)
	return token.Token{
		Kind: token.Newline,
		Span: source.Span{Start: start.Offset, End: s.cur.off},
		Pos:  start.LineCol,
		Text: text,
	}
}

func (s *Scanner) skipSpace() {
	for {
		r, size := s.cur.peekRune()
		if size == 0 || !isSpace(r) {
			return
		}
		s.cur.advance(size)
	}
}

// scanSpace coalesces a run of non-newline whitespace into one token.
func (s *Scanner) scanSpace() (token.Token, error) {
	start := s.cur.position()
	s.text = s.text[:0]
	n := s.consumeRun(0, isSpace)
	return s.finish(token.Space, start, n, nil)
}
