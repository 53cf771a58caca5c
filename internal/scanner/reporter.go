package scanner

import (
	"errors"
	"fmt"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/source"
)

func (s *Scanner) report(code diag.Code, sev diag.Severity, sp source.Span, pos source.LineCol, format string, args ...any) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, sev, sp, pos, fmt.Sprintf(format, args...))
	}
}

// Diagnostic converts a skippable scanner error into a diagnostic.
// ok is false for errors that are not *TokenError.
func Diagnostic(err error) (d diag.Diagnostic, ok bool) {
	var te *TokenError
	if !errors.As(err, &te) {
		return diag.Diagnostic{}, false
	}
	code := diag.ScanMalformedNumber
	if errors.Is(te.Err, ErrTokenTooLong) {
		code = diag.ScanTokenTooLong
	}
	return diag.NewError(code, te.Span, te.Detail()).WithPos(te.Pos), true
}
