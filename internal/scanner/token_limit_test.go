package scanner

import (
	"errors"
	"strings"
	"testing"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/token"
)

func TestTokenTooLongSkipsRunAndResyncs(t *testing.T) {
	const limit = 16
	content := strings.Repeat("a", limit+1) + " next"
	sc := NewString(content, Options{MaxTokenLength: limit, BufferSize: minBufferSize})

	tok, err := sc.NextToken()
	if !errors.Is(err, ErrTokenTooLong) {
		t.Fatalf("expected ErrTokenTooLong, got %v", err)
	}
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TokenError, got %T", err)
	}
	if te.Length != limit+1 || te.Kind != token.Word {
		t.Fatalf("unexpected error details %+v", te)
	}
	if len([]rune(te.Text)) != limit {
		t.Fatalf("kept text has %d runes, want %d", len([]rune(te.Text)), limit)
	}
	if te.Span.End != int64(limit+1) {
		t.Fatalf("span end = %d", te.Span.End)
	}

	d, ok := Diagnostic(err)
	if !ok || d.Code != diag.ScanTokenTooLong || d.Severity != diag.SevError {
		t.Fatalf("Diagnostic(err) = %+v, %v", d, ok)
	}

	next, err := sc.NextToken()
	if err != nil || next.Text != "next" {
		t.Fatalf("expected resync at next word, got %v %v", next, err)
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	content := strings.Repeat("б", DefaultMaxTokenLength)
	sc := NewString(content, Options{})

	tok, err := sc.NextToken()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tok.Kind != token.Word || tok.RuneLen() != DefaultMaxTokenLength {
		t.Fatalf("got %s of %d runes", tok.Kind, tok.RuneLen())
	}
	if tok.Span.Len() != int64(len(content)) {
		t.Fatalf("span len = %d, want %d", tok.Span.Len(), len(content))
	}
}

func TestLongNumberRejected(t *testing.T) {
	sc := NewString("-"+strings.Repeat("9", 10), Options{MaxTokenLength: 10})
	_, err := sc.NextToken()
	var te *TokenError
	if !errors.As(err, &te) || te.Kind != token.Number || te.Length != 11 {
		t.Fatalf("expected number too long, got %v", err)
	}
	if tok, err := sc.NextToken(); err != nil || tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v %v", tok, err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.normalized()
	if o.BufferSize != DefaultBufferSize || o.MaxTokenLength != DefaultMaxTokenLength {
		t.Fatalf("defaults: %+v", o)
	}
	if o := (Options{BufferSize: 3}).normalized(); o.BufferSize != minBufferSize {
		t.Fatalf("tiny buffer not raised: %d", o.BufferSize)
	}
}
