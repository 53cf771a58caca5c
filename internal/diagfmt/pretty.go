package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"textanalyzer/internal/diag"
)

type palette struct {
	err, warn, info, code, path, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan),
		code: color.New(color.Faint),
		path: color.New(color.Bold),
		note: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем Notes с отступом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		loc := formatPath(d.Path, opts.PathMode, opts.Base)
		if d.Pos.Line > 0 {
			loc = fmt.Sprintf("%s:%d:%d", loc, d.Pos.Line, d.Pos.Col)
		}
		msg := d.Message
		if opts.Width > 0 {
			msg = runewidth.Truncate(msg, opts.Width, "...")
		}
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprint(loc), p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), msg); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg); err != nil {
				return err
			}
		}
	}
	if dropped := bag.Dropped(); dropped > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostics not shown\n", dropped); err != nil {
			return err
		}
	}
	return nil
}
