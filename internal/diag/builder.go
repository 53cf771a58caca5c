package diag

import "textanalyzer/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithPos attaches a line/column to the diagnostic.
func (d Diagnostic) WithPos(pos source.LineCol) Diagnostic {
	d.Pos = pos
	return d
}

// WithPath attaches the input path to the diagnostic.
func (d Diagnostic) WithPath(path string) Diagnostic {
	d.Path = path
	return d
}
