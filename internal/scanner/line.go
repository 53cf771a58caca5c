package scanner

import "fmt"

// NextLine returns the raw text up to the next \n, \r\n or lone \r, without
// the terminator. ok is false once no characters remain. Token and line
// reads may be mixed, but not while a peeked token is pending.
func (s *Scanner) NextLine() (line string, ok bool, err error) {
	if s.closed {
		return "", false, ErrClosed
	}
	if s.look != nil {
		return "", false, ErrPendingPeek
	}
	s.text = s.text[:0]
	seen := false
	for {
		b, more := s.cur.peekByte(0)
		if !more {
			if seen {
				break
			}
			if err := s.cur.readErr(); err != nil {
				return "", false, fmt.Errorf("scanner: read: %w", err)
			}
			return "", false, nil
		}
		seen = true
		if b == '\n' {
			s.cur.newline(1)
			break
		}
		if b == '\r' {
			size := 1
			if nb, ok := s.cur.peekByte(1); ok && nb == '\n' {
				size = 2
			}
			s.cur.newline(size)
			break
		}
		_, size := s.cur.peekRune()
		s.text = append(s.text, s.cur.advance(size)...)
	}
	return string(s.text), true, nil
}
