package diag

import (
	"textanalyzer/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding. Path is empty for in-memory streams.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Primary  source.Span
	Pos      source.LineCol
	Notes    []Note
}
