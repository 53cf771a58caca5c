package scanner_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"textanalyzer/internal/scanner"
	"textanalyzer/internal/token"
)

func readLines(t *testing.T, sc *scanner.Scanner) []string {
	t.Helper()
	var lines []string
	for {
		line, ok, err := sc.NextLine()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestNextLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single no terminator", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"blank lines", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
		{"unicode", "пр ивет\nмир", []string{"пр ивет", "мир"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := scanner.New(iotest.OneByteReader(strings.NewReader(tt.input)), scanner.Options{BufferSize: 8})
			got := readLines(t, sc)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextLineThenTokens(t *testing.T) {
	sc := scanner.NewString("header line\nword 5\n", scanner.Options{})
	line, ok, err := sc.NextLine()
	if err != nil || !ok || line != "header line" {
		t.Fatalf("NextLine = %q %v %v", line, ok, err)
	}
	if p := sc.Pos(); p.Line != 2 || p.Col != 1 {
		t.Fatalf("pos after line = %v", p)
	}
	tok, err := sc.NextToken()
	if err != nil || tok.Kind != token.Word || tok.Pos.Line != 2 {
		t.Fatalf("token after line = %v %v", tok, err)
	}
}
