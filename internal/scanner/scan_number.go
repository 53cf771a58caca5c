package scanner

import "textanalyzer/internal/token"

// scanNumber: необязательный ведущий '-', затем ASCII-цифры.
// В режиме split минус внутри серии цифр завершает число ("12-3" -> 12, -3).
// В режиме strict вся серия вида 12-3-4 потребляется и отклоняется.
func (s *Scanner) scanNumber() (token.Token, error) {
	start := s.cur.position()
	s.text = s.text[:0]
	n := 0
	if b, _ := s.cur.peekByte(0); b == '-' {
		n = s.take(n, 1)
	}
	n = s.consumeRun(n, isDigit)

	var cause error
	if s.opts.Numbers == NumbersStrict {
		for s.minusDigitAhead() {
			cause = ErrMalformedNumber
			n = s.take(n, 1)
			n = s.consumeRun(n, isDigit)
		}
	}
	return s.finish(token.Number, start, n, cause)
}
