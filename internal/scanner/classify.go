package scanner

import "unicode"

// isDigit: только ASCII 0-9. Другие цифры Unicode (например, арабские
// "٣") не начинают Number; в режиме WordsAlnum они идут в слово.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isSpace: пробельные символы, кроме переводов строки.
func isSpace(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}

func isWordLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || unicode.Is(unicode.Pd, r)
}

// isWordRune is checked after the number rules, so an ASCII digit only
// reaches it as a continuation.
func (s *Scanner) isWordRune(r rune) bool {
	if isWordLetter(r) {
		return true
	}
	return s.opts.Words == WordsAlnum && unicode.IsDigit(r)
}

// minusDigitAhead: ровно '-' и сразу ASCII-цифра.
func (s *Scanner) minusDigitAhead() bool {
	b0, ok := s.cur.peekByte(0)
	if !ok || b0 != '-' {
		return false
	}
	b1, ok := s.cur.peekByte(1)
	return ok && isDigit(rune(b1))
}
