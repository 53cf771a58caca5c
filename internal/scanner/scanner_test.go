package scanner_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/scanner"
	"textanalyzer/internal/source"
	"textanalyzer/internal/token"
)

type tk struct {
	kind token.Kind
	text string
}

// collect читает токены до EOF, падая на первой ошибке.
func collect(t *testing.T, sc *scanner.Scanner) []token.Token {
	t.Helper()
	var out []token.Token
	for {
		tok, err := sc.NextToken()
		if err != nil {
			t.Fatalf("unexpected error after %d tokens: %v", len(out), err)
		}
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func assertTokens(t *testing.T, got []token.Token, want []tk) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].Kind != want[i].kind || got[i].Text != want[i].text {
			t.Errorf("token %d: got %s %q, want %s %q", i, got[i].Kind, got[i].Text, want[i].kind, want[i].text)
		}
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tk
	}{
		{"words", "Hello world", []tk{{token.Word, "Hello"}, {token.Word, "world"}}},
		{"apostrophe", "don't", []tk{{token.Word, "don't"}}},
		{"hyphenated", "well-known", []tk{{token.Word, "well-known"}}},
		{"unicode dash", "a–b", []tk{{token.Word, "a–b"}}},
		{"cyrillic", "Привет, мир!", []tk{
			{token.Word, "Привет"}, {token.Punct, ","}, {token.Word, "мир"}, {token.Punct, "!"},
		}},
		{"numbers", "42 -7 0", []tk{{token.Number, "42"}, {token.Number, "-7"}, {token.Number, "0"}}},
		{"embedded minus splits", "12-3", []tk{{token.Number, "12"}, {token.Number, "-3"}}},
		{"trailing minus is a dash", "12-", []tk{{token.Number, "12"}, {token.Word, "-"}}},
		{"lone dash", "a - b", []tk{{token.Word, "a"}, {token.Word, "-"}, {token.Word, "b"}}},
		{"digits end a word", "abc123", []tk{{token.Word, "abc"}, {token.Number, "123"}}},
		{"digits then letters", "7up", []tk{{token.Number, "7"}, {token.Word, "up"}}},
		{"punct", "a.b;", []tk{{token.Word, "a"}, {token.Punct, "."}, {token.Word, "b"}, {token.Punct, ";"}}},
		{"newline", "a\nb", []tk{{token.Word, "a"}, {token.Newline, "\n"}, {token.Word, "b"}}},
		{"crlf", "a\r\nb\rc", []tk{
			{token.Word, "a"}, {token.Newline, "\r\n"}, {token.Word, "b"}, {token.Newline, "\r"}, {token.Word, "c"},
		}},
		{"lone cr only", "\r\r", []tk{{token.Newline, "\r"}, {token.Newline, "\r"}}},
		{"non-ascii digit is not a number", "٣4", []tk{{token.Punct, "٣"}, {token.Number, "4"}}},
		{"whitespace skipped", " \t a   b ", []tk{{token.Word, "a"}, {token.Word, "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, collect(t, scanner.NewString(tt.input, scanner.Options{})), tt.want)
		})
	}
}

func TestEmptyStreamReturnsEOF(t *testing.T) {
	sc := scanner.NewString("", scanner.Options{})
	for i := 0; i < 3; i++ {
		tok, err := sc.NextToken()
		if err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
		if tok.Kind != token.EOF {
			t.Fatalf("call %d: got %s, want EOF", i, tok.Kind)
		}
	}
}

func TestPositions(t *testing.T) {
	sc := scanner.NewString("ab  cd\nщё x", scanner.Options{})
	want := []struct {
		text string
		span source.Span
		pos  source.LineCol
	}{
		{"ab", source.Span{Start: 0, End: 2}, source.LineCol{Line: 1, Col: 1}},
		{"cd", source.Span{Start: 4, End: 6}, source.LineCol{Line: 1, Col: 5}},
		{"\n", source.Span{Start: 6, End: 7}, source.LineCol{Line: 1, Col: 7}},
		{"щё", source.Span{Start: 7, End: 11}, source.LineCol{Line: 2, Col: 1}},
		{"x", source.Span{Start: 12, End: 13}, source.LineCol{Line: 2, Col: 4}},
	}
	got := collect(t, sc)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Text != w.text || got[i].Span != w.span || got[i].Pos != w.pos {
			t.Errorf("token %d: got %q %v %v, want %q %v %v", i, got[i].Text, got[i].Span, got[i].Pos, w.text, w.span, w.pos)
		}
	}
	if p := sc.Pos(); p.Offset != 13 || p.Line != 2 || p.Col != 5 {
		t.Errorf("final pos = %v", p)
	}
}

func TestBlockBoundaries(t *testing.T) {
	input := "Съешь же ещё этих мягких французских булок, да выпей же чаю 1234567 -89"
	ref := collect(t, scanner.NewString(input, scanner.Options{}))

	readers := map[string]func() io.Reader{
		"small buffer": func() io.Reader { return strings.NewReader(input) },
		"one byte":     func() io.Reader { return iotest.OneByteReader(strings.NewReader(input)) },
		"half reader":  func() io.Reader { return iotest.HalfReader(strings.NewReader(input)) },
	}
	for name, mk := range readers {
		t.Run(name, func(t *testing.T) {
			got := collect(t, scanner.New(mk(), scanner.Options{BufferSize: 1}))
			if len(got) != len(ref) {
				t.Fatalf("got %d tokens, want %d", len(got), len(ref))
			}
			for i := range ref {
				if got[i] != ref[i] {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], ref[i])
				}
			}
		})
	}
}

func TestLettersRejoin(t *testing.T) {
	inputs := []string{
		"the quick brown fox",
		"  Leading and   trailing  ",
		"Ünïcödé wörds ÄND Mixed Case",
		strings.Repeat("abcdefghij ", 200),
	}
	for _, input := range inputs {
		sc := scanner.New(strings.NewReader(input), scanner.Options{BufferSize: 16})
		var words []string
		for _, tok := range collect(t, sc) {
			if tok.Kind == token.Word {
				words = append(words, tok.Text)
			}
		}
		if got, want := strings.Join(words, " "), strings.Join(strings.Fields(input), " "); got != want {
			t.Errorf("rejoin mismatch:\n got %q\nwant %q", got, want)
		}
	}
}

// Не-ASCII цифры: в alnum-режиме часть слова, но не Number.
func TestNonASCIIDigitsAlnum(t *testing.T) {
	sc := scanner.NewString("x٣ ٣", scanner.Options{Words: scanner.WordsAlnum})
	assertTokens(t, collect(t, sc), []tk{{token.Word, "x٣"}, {token.Word, "٣"}})
}

func TestStrictNumbers(t *testing.T) {
	sc := scanner.NewString("5 12-3-4 x", scanner.Options{Numbers: scanner.NumbersStrict})

	tok, err := sc.NextToken()
	if err != nil || tok.Text != "5" {
		t.Fatalf("first token: %v %v", tok, err)
	}
	_, err = sc.NextToken()
	if !errors.Is(err, scanner.ErrMalformedNumber) {
		t.Fatalf("expected ErrMalformedNumber, got %v", err)
	}
	var te *scanner.TokenError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TokenError, got %T", err)
	}
	if te.Text != "12-3-4" || te.Span != (source.Span{Start: 2, End: 8}) {
		t.Fatalf("unexpected error details: %q %v", te.Text, te.Span)
	}
	if !scanner.IsSkippable(err) {
		t.Fatalf("malformed number must be skippable")
	}
	// после ошибки сканер продолжает со следующего токена
	tok, err = sc.NextToken()
	if err != nil || tok.Kind != token.Word || tok.Text != "x" {
		t.Fatalf("resync: %v %v", tok, err)
	}
}

func TestAlnumWords(t *testing.T) {
	sc := scanner.NewString("abc123 99bottles", scanner.Options{Words: scanner.WordsAlnum})
	assertTokens(t, collect(t, sc), []tk{
		{token.Word, "abc123"}, {token.Number, "99"}, {token.Word, "bottles"},
	})
}

func TestEmitSpace(t *testing.T) {
	sc := scanner.NewString("a \t b\n", scanner.Options{EmitSpace: true})
	assertTokens(t, collect(t, sc), []tk{
		{token.Word, "a"}, {token.Space, " \t "}, {token.Word, "b"}, {token.Newline, "\n"},
	})
}

func TestInvalidUTF8(t *testing.T) {
	bag := diag.NewBag(4)
	sc := scanner.NewString("ab\xffcd", scanner.Options{Reporter: diag.BagReporter{Bag: bag}})
	assertTokens(t, collect(t, sc), []tk{
		{token.Word, "ab"}, {token.Punct, "�"}, {token.Word, "cd"},
	})
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.ScanInvalidUTF8 || d.Severity != diag.SevWarning {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Primary != (source.Span{Start: 2, End: 3}) {
		t.Fatalf("span = %v", d.Primary)
	}
}

func TestPeekAndHasNext(t *testing.T) {
	sc := scanner.NewString("word 17", scanner.Options{})
	if !sc.HasNextWord() || sc.HasNextInt() {
		t.Fatalf("expected a word first")
	}
	peeked, _ := sc.Peek()
	tok, err := sc.NextToken()
	if err != nil || tok != peeked {
		t.Fatalf("NextToken after Peek: %v %v, peeked %v", tok, err, peeked)
	}
	if !sc.HasNextInt() {
		t.Fatalf("expected a number")
	}
	if _, _, err := sc.NextLine(); !errors.Is(err, scanner.ErrPendingPeek) {
		t.Fatalf("NextLine with pending peek: %v", err)
	}
	n, ok, err := sc.NextInt()
	if err != nil || !ok || n != 17 {
		t.Fatalf("NextInt = %d %v %v", n, ok, err)
	}
	if sc.HasNextWord() || sc.HasNextInt() {
		t.Fatalf("expected end of stream")
	}
}

func TestNextWordAndNextInt(t *testing.T) {
	sc := scanner.NewString("1, one; 2 two 99999999999999999999 3", scanner.Options{})
	var words []string
	for {
		w, ok, err := sc.NextWord()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		words = append(words, w)
	}
	if strings.Join(words, ",") != "one,two" {
		t.Fatalf("words = %v", words)
	}

	sc = scanner.NewString("1, one; 2 two 99999999999999999999 3", scanner.Options{})
	var nums []int
	for {
		n, ok, err := sc.NextInt()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		nums = append(nums, n)
	}
	if len(nums) != 3 || nums[0] != 1 || nums[1] != 2 || nums[2] != 3 {
		t.Fatalf("nums = %v", nums)
	}
}

type closeTracker struct {
	io.Reader
	closes int
}

func (c *closeTracker) Close() error {
	c.closes++
	return nil
}

func TestClose(t *testing.T) {
	rc := &closeTracker{Reader: strings.NewReader("a b")}
	sc := scanner.New(rc, scanner.Options{})
	if err := sc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := sc.Close(); err != nil {
		t.Fatal(err)
	}
	if rc.closes != 1 {
		t.Fatalf("underlying reader closed %d times", rc.closes)
	}
	if !sc.Closed() {
		t.Fatalf("expected Closed() after Close")
	}
	if _, err := sc.NextToken(); !errors.Is(err, scanner.ErrClosed) {
		t.Fatalf("NextToken after Close: %v", err)
	}
	if _, _, err := sc.NextLine(); !errors.Is(err, scanner.ErrClosed) {
		t.Fatalf("NextLine after Close: %v", err)
	}
}

func TestReadErrorSurfacesAfterData(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("last"), iotest.ErrReader(boom))
	sc := scanner.New(r, scanner.Options{})
	tok, err := sc.NextToken()
	if err != nil || tok.Text != "last" {
		t.Fatalf("expected buffered word first, got %v %v", tok, err)
	}
	if _, err := sc.NextToken(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestTokensIterator(t *testing.T) {
	sc := scanner.NewString("a 1-2 b", scanner.Options{Numbers: scanner.NumbersStrict})
	var texts []string
	var errs int
	for tok, err := range sc.Tokens() {
		if err != nil {
			errs++
			continue
		}
		texts = append(texts, tok.Text)
	}
	if errs != 1 || strings.Join(texts, " ") != "a b" {
		t.Fatalf("texts=%v errs=%d", texts, errs)
	}
}

func TestNegativeOptionsPanic(t *testing.T) {
	for _, opts := range []scanner.Options{{BufferSize: -1}, {MaxTokenLength: -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %+v", opts)
				}
			}()
			scanner.NewString("", opts)
		}()
	}
}

func TestParseModes(t *testing.T) {
	if m, err := scanner.ParseNumberMode("strict"); err != nil || m != scanner.NumbersStrict {
		t.Fatalf("ParseNumberMode(strict) = %v %v", m, err)
	}
	if _, err := scanner.ParseNumberMode("loose"); err == nil {
		t.Fatalf("expected error for unknown number mode")
	}
	if w, err := scanner.ParseWordClass("alnum"); err != nil || w != scanner.WordsAlnum || w.String() != "alnum" {
		t.Fatalf("ParseWordClass(alnum) = %v %v", w, err)
	}
}
