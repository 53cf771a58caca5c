package testkit

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"textanalyzer/internal/source"
	"textanalyzer/internal/token"
)

// CheckTokenInvariants validates a complete token stream of input:
// 1) spans are ordered, non-overlapping and start on rune boundaries
// 2) every token but EOF is non-empty; the stream ends with EOF at len(input)
// 3) Pos matches the line and rune column of Span.Start ("\r\n" is one break)
// 4) bytes between tokens are non-newline whitespace
// 5) token text is the spanned input (a prefix for Invalid, U+FFFD for a bad byte)
func CheckTokenInvariants(input []byte, toks []token.Token) error {
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	size, err := safecast.Conv[int64](len(input))
	if err != nil {
		return fmt.Errorf("input length overflow: %w", err)
	}
	starts := runeStarts(input)

	var prevEnd int64
	for i, tok := range toks {
		sp := tok.Span
		if sp.Start < prevEnd || sp.End < sp.Start || sp.End > size {
			return fmt.Errorf("token %d %s: bad span %v after offset %d", i, tok.Kind, sp, prevEnd)
		}
		want, ok := starts[sp.Start]
		if !ok {
			return fmt.Errorf("token %d %s: span %v starts inside a rune", i, tok.Kind, sp)
		}
		if tok.Pos != want {
			return fmt.Errorf("token %d %s: pos %s, want %s", i, tok.Kind, tok.Pos, want)
		}
		if err := checkGap(input[prevEnd:sp.Start]); err != nil {
			return fmt.Errorf("token %d %s: %w", i, tok.Kind, err)
		}
		prevEnd = sp.End

		if tok.Kind == token.EOF {
			if i != len(toks)-1 {
				return fmt.Errorf("token %d: EOF before the end of the stream", i)
			}
			if sp.Start != size || sp.End != size {
				return fmt.Errorf("EOF span %v, want [%d-%d]", sp, size, size)
			}
			return nil
		}
		if sp.Empty() {
			return fmt.Errorf("token %d %s: empty span", i, tok.Kind)
		}
		if err := checkText(tok, string(input[sp.Start:sp.End])); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return fmt.Errorf("stream does not end with EOF")
}

// runeStarts maps the offset of every rune (and of the end) to its position.
func runeStarts(input []byte) map[int64]source.LineCol {
	out := make(map[int64]source.LineCol, len(input)+1)
	pos := source.Start
	for off := 0; off < len(input); {
		out[int64(off)] = pos
		r, size := utf8.DecodeRune(input[off:])
		switch {
		case r == '\r' && off+1 < len(input) && input[off+1] == '\n':
			size = 2
			fallthrough
		case r == '\n' || r == '\r':
			pos.Line++
			pos.Col = 1
		default:
			pos.Col++
		}
		off += size
	}
	out[int64(len(input))] = pos
	return out
}

func checkGap(gap []byte) error {
	for len(gap) > 0 {
		r, size := utf8.DecodeRune(gap)
		if r == '\n' || r == '\r' || !unicode.IsSpace(r) {
			return fmt.Errorf("skipped non-space rune %q", r)
		}
		gap = gap[size:]
	}
	return nil
}

func checkText(tok token.Token, spanned string) error {
	switch tok.Kind {
	case token.Invalid:
		if len(tok.Text) > len(spanned) || spanned[:len(tok.Text)] != tok.Text {
			return fmt.Errorf("invalid token text %q is not a prefix of %q", tok.Text, spanned)
		}
	case token.Punct:
		if tok.Text == string(utf8.RuneError) && len(spanned) == 1 {
			return nil
		}
		fallthrough
	default:
		if tok.Text != spanned {
			return fmt.Errorf("%s text %q, input %q", tok.Kind, tok.Text, spanned)
		}
	}
	return nil
}
