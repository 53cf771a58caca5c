// Package token defines lexical token kinds for the text scanner.
// Invariants:
//   - Token.Text is an owned copy of the scanned runes; it never aliases the
//     scanner's block buffer.
//   - Token.Span covers exactly the bytes of Text in the input stream.
//   - Token.Pos is the 1-based line/column of the token's first rune.
//   - The kind set is closed: Word, Number, Punct, Newline, Space, EOF and Invalid.
package token
