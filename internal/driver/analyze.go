package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/source"
	"textanalyzer/internal/trace"
)

// AnalyzeReader counts the words of r sequentially. Diagnostics carry an
// empty path.
func AnalyzeReader(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "analyze:<stream>", trace.ParentID(ctx))
	phase := opts.Timer.Begin("scan")

	res := scanChunk(ctx, r, "", 0, opts)
	res.rebase(source.Start)

	opts.Timer.End(phase, "")
	span.WithExtra("words", strconv.Itoa(res.acc.Total())).End("")
	if res.err != nil {
		return nil, res.err
	}
	return &Result{Acc: res.acc, Bag: res.bag, Chunks: 1, Bytes: res.read}, nil
}

// AnalyzeFile counts the words of the file at path. With Jobs > 1 and a file
// of at least two MinChunkSize ranges, the file is split at aligned
// boundaries and the chunks are scanned in parallel; the merged result is
// identical to a sequential scan.
func AnalyzeFile(ctx context.Context, path string, opts Options) (*Result, error) {
	f, size, err := OpenInput(path, opts.MaxFileSize)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "analyze:"+path, trace.ParentID(ctx))
	ctx = trace.WithSpan(ctx, span)

	chunks := []chunk{{0, size}}
	if opts.Jobs > 1 {
		chunks, err = planChunks(f, size, opts.Jobs, opts.minChunk())
		if err != nil {
			span.End("error")
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	span.WithExtra("bytes", strconv.FormatInt(size, 10)).WithExtra("chunks", strconv.Itoa(len(chunks)))

	results, err := scanChunks(ctx, f, path, chunks, opts)
	if err != nil {
		span.End("error")
		return nil, err
	}

	phase := opts.Timer.Begin("merge")
	start := time.Now()
	opts.emit(Event{File: path, Chunk: -1, Chunks: len(chunks), Stage: StageMerge, Status: StatusWorking})
	res, err := mergeChunks(results, opts.maxDiagnostics())
	opts.Timer.End(phase, fmt.Sprintf("%d chunks", len(chunks)))
	if err != nil {
		opts.emit(Event{File: path, Chunk: -1, Chunks: len(chunks), Stage: StageMerge, Status: StatusError, Err: err})
		span.End("error")
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	opts.emit(Event{File: path, Chunk: -1, Chunks: len(chunks), Stage: StageMerge, Status: StatusDone, Elapsed: time.Since(start)})

	res.Files = []string{path}
	res.Bytes = size
	span.WithExtra("words", strconv.Itoa(res.Acc.Total())).End("")
	return res, nil
}

// OpenInput opens a regular file and enforces the size limit (0 means none).
func OpenInput(path string, maxSize int64) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%s: is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		f.Close()
		return nil, 0, fmt.Errorf("%s: %w (%d bytes, limit %d)", path, ErrFileTooLarge, info.Size(), maxSize)
	}
	return f, info.Size(), nil
}

// scanChunks runs one worker per chunk. Worker errors are kept per chunk;
// the error returned is the one of the earliest failing chunk.
func scanChunks(ctx context.Context, f io.ReaderAt, path string, chunks []chunk, opts Options) ([]*chunkResult, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.ParentID(ctx)
	phase := opts.Timer.Begin("scan")
	defer func() { opts.Timer.End(phase, fmt.Sprintf("%d chunks", len(chunks))) }()

	for i, c := range chunks {
		opts.emit(Event{File: path, Chunk: i, Chunks: len(chunks), Stage: StageScan, Status: StatusQueued, Bytes: c.end - c.start})
	}

	results := make([]*chunkResult, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(opts.Jobs, len(chunks))))
	for i, c := range chunks {
		g.Go(func() error {
			span := trace.Begin(tracer, trace.ScopeChunk, fmt.Sprintf("chunk:%d", i), parent).
				WithExtra("range", fmt.Sprintf("%d-%d", c.start, c.end))
			start := time.Now()
			opts.emit(Event{File: path, Chunk: i, Chunks: len(chunks), Stage: StageScan, Status: StatusWorking})

			r := io.NewSectionReader(f, c.start, c.end-c.start)
			res := scanChunk(gctx, r, path, c.start, opts)
			results[i] = res

			ev := Event{File: path, Chunk: i, Chunks: len(chunks), Stage: StageScan, Status: StatusDone,
				Bytes: c.end - c.start, Elapsed: time.Since(start)}
			if res.err != nil {
				ev.Status, ev.Err = StatusError, res.err
			}
			opts.emit(ev)
			span.WithExtra("words", strconv.Itoa(res.acc.Total())).End(string(ev.Status))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ошибки приводятся к координатам файла в порядке чанков
	origin := source.Start
	for _, res := range results {
		origin = res.rebase(origin)
		if res.err != nil {
			return nil, fmt.Errorf("%s: %w", path, res.err)
		}
	}
	return results, nil
}

// mergeChunks folds the chunk accumulators and bags in chunk order.
func mergeChunks(results []*chunkResult, maxDiagnostics int) (*Result, error) {
	acc := results[0].acc
	bag := diag.NewBag(maxDiagnostics)
	bag.Merge(results[0].bag)
	for _, res := range results[1:] {
		if err := acc.Merge(res.acc); err != nil {
			return nil, err
		}
		bag.Merge(res.bag)
	}
	return &Result{Acc: acc, Bag: bag, Chunks: len(results)}, nil
}
