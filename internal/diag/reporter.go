package diag

import "textanalyzer/internal/source"

// Reporter: минимальный контракт получения диагностик от сканера и драйвера.
// Реализации: BagReporter (кладёт в Bag), PathReporter (проставляет путь).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, pos source.LineCol, msg string)
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, pos source.LineCol, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Pos: pos,
	})
}

// PathReporter stamps every diagnostic with Path before adding it to Bag.
// Spans are shifted by Base so that chunk-local offsets become file offsets.
type PathReporter struct {
	Bag  *Bag
	Path string
	Base int64
}

func (r PathReporter) Report(code Code, sev Severity, primary source.Span, pos source.LineCol, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Path: r.Path, Primary: primary.Shift(r.Base), Pos: pos,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, source.LineCol, string) {}
