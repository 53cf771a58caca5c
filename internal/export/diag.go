package export

import (
	"errors"

	"fortio.org/safecast"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/source"
	"textanalyzer/internal/stats"
)

// Diagnostic describes a failed load of path. Parse errors carry their
// line; everything not produced by the parsers is an I/O error.
func Diagnostic(path string, err error) diag.Diagnostic {
	var (
		code = diag.IOLoadFileError
		pos  source.LineCol
		pe   *ParseError
	)
	switch {
	case errors.Is(err, ErrSchema):
		code = diag.ExportBadSchema
	case errors.Is(err, stats.ErrInconsistent):
		code = diag.ExportPositions
	case errors.As(err, &pe):
		code = diag.ExportBadRecord
		if line, cerr := safecast.Conv[uint32](pe.Line); cerr == nil {
			pos = source.LineCol{Line: line, Col: 1}
		}
	}
	d := diag.NewError(code, source.Span{}, err.Error()).WithPath(path)
	if pos.Line > 0 {
		d = d.WithPos(pos)
	}
	return d
}
