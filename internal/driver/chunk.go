package driver

import (
	"context"
	"errors"
	"io"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/scanner"
	"textanalyzer/internal/source"
	"textanalyzer/internal/stats"
	"textanalyzer/internal/token"
)

const alignBlock = 4096

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// AlignBoundary moves off to a position where no token can straddle it:
// off itself when the previous byte is ASCII whitespace, otherwise just past
// the next ASCII whitespace byte, or size when there is none. A "\r\n" pair
// is never split.
func AlignBoundary(r io.ReaderAt, off, size int64) (int64, error) {
	if off <= 0 {
		return 0, nil
	}
	if off >= size {
		return size, nil
	}
	var buf [alignBlock]byte
	pos := off - 1
	prev := byte(0)
	for pos < size {
		n, err := r.ReadAt(buf[:min(int64(len(buf)), size-pos)], pos)
		for i := range n {
			b := buf[i]
			at := pos + int64(i)
			if prev == '\r' && b == '\n' {
				prev = b
				continue
			}
			if at >= off && isASCIISpace(prev) {
				return at, nil
			}
			prev = b
		}
		pos += int64(n)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if n == 0 {
			break
		}
	}
	return size, nil
}

type chunk struct {
	start, end int64
}

// planChunks splits size bytes into up to jobs aligned ranges of at least
// minSize bytes. Empty ranges are dropped.
func planChunks(r io.ReaderAt, size int64, jobs int, minSize int64) ([]chunk, error) {
	n := int64(jobs)
	if byMin := size / minSize; byMin < n {
		n = byMin
	}
	if n < 2 {
		return []chunk{{0, size}}, nil
	}
	bounds := make([]int64, 0, n+1)
	bounds = append(bounds, 0)
	for i := int64(1); i < n; i++ {
		b, err := AlignBoundary(r, size*i/n, size)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, max(b, bounds[len(bounds)-1]))
	}
	bounds = append(bounds, size)

	chunks := make([]chunk, 0, n)
	for i := 1; i < len(bounds); i++ {
		if bounds[i] > bounds[i-1] {
			chunks = append(chunks, chunk{bounds[i-1], bounds[i]})
		}
	}
	if len(chunks) == 0 {
		chunks = append(chunks, chunk{0, size})
	}
	return chunks, nil
}

// chunkResult is owned by exactly one worker until Wait returns.
type chunkResult struct {
	acc  *stats.Accumulator
	bag  *diag.Bag
	base int64
	end  source.LineCol // позиция сканера в конце чанка, относительно чанка
	read int64
	err  error
}

// scanChunk counts the words of r. Offsets are reported relative to the
// file, lines and columns relative to the chunk until relocate runs.
func scanChunk(ctx context.Context, r io.Reader, path string, base int64, opts Options) *chunkResult {
	res := &chunkResult{
		acc:  stats.New(opts.Stats),
		bag:  diag.NewBag(opts.maxDiagnostics()),
		base: base,
	}
	sopts := opts.Scanner
	sopts.Reporter = diag.PathReporter{Bag: res.bag, Path: path, Base: base}
	sc := scanner.New(r, sopts)

	for n := 0; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.err = err
				break
			}
		}
		tok, err := sc.NextToken()
		if err != nil {
			if opts.SkipMalformed && scanner.IsSkippable(err) {
				if d, ok := scanner.Diagnostic(err); ok {
					d.Severity = diag.SevWarning
					d.Path = path
					d.Primary = d.Primary.Shift(base)
					res.bag.Add(d)
				}
				continue
			}
			res.err = err
			break
		}
		if tok.Kind == token.EOF {
			break
		}
		res.acc.AddToken(tok)
	}
	pos := sc.Pos()
	res.end, res.read = pos.LineCol, pos.Offset
	return res
}

// relocate maps a chunk-relative position onto the file, given the file
// position at which the chunk starts.
func relocate(origin, pos source.LineCol) source.LineCol {
	if pos.Line <= 1 {
		return source.LineCol{Line: origin.Line, Col: origin.Col + pos.Col - 1}
	}
	return source.LineCol{Line: origin.Line + pos.Line - 1, Col: pos.Col}
}

// rebase rewrites the chunk's diagnostics and error to file coordinates and
// returns the file position at which the next chunk starts.
func (c *chunkResult) rebase(origin source.LineCol) source.LineCol {
	// bag принадлежит чанку, правим на месте
	items := c.bag.Items()
	for i := range items {
		items[i].Pos = relocate(origin, items[i].Pos)
	}
	var te *scanner.TokenError
	if errors.As(c.err, &te) {
		te.Span = te.Span.Shift(c.base)
		te.Pos = relocate(origin, te.Pos)
	}
	return relocate(origin, c.end)
}
