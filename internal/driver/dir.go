package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/source"
	"textanalyzer/internal/stats"
	"textanalyzer/internal/trace"
)

// TextExt is the extension AnalyzeDir picks up.
const TextExt = ".txt"

// ListTextFiles возвращает отсортированный список всех *.txt файлов в директории.
func ListTextFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), TextExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every *.txt file under dir, up to Jobs files at a time,
// and merges them in sorted path order. Files that cannot be opened or are
// too large are reported to the Bag as errors and skipped; a scan error
// aborts the run.
func AnalyzeDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	files, err := ListTextFiles(dir)
	if err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePhase, "analyze-dir:"+dir, trace.ParentID(ctx)).
		WithExtra("files", strconv.Itoa(len(files)))
	ctx = trace.WithSpan(ctx, span)

	results := make([]*chunkResult, len(files))
	loadErrs := make([]error, len(files))
	sizes := make([]int64, len(files))

	jobs := max(1, opts.Jobs)
	phase := opts.Timer.Begin("scan")
	for _, path := range files {
		opts.emit(Event{File: path, Chunks: 1, Stage: StageScan, Status: StatusQueued})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(1, len(files))))
	for i, path := range files {
		g.Go(func() error {
			fspan := trace.Begin(tracer, trace.ScopeFile, "analyze:"+path, span.ID())
			start := time.Now()
			opts.emit(Event{File: path, Chunks: 1, Stage: StageScan, Status: StatusWorking})

			f, size, err := OpenInput(path, opts.MaxFileSize)
			if err != nil {
				loadErrs[i] = err
				opts.emit(Event{File: path, Chunks: 1, Stage: StageScan, Status: StatusError, Err: err})
				fspan.End("load error")
				return nil
			}
			defer f.Close()
			sizes[i] = size

			res := scanChunk(gctx, f, path, 0, opts)
			results[i] = res
			ev := Event{File: path, Chunks: 1, Stage: StageScan, Status: StatusDone, Bytes: size, Elapsed: time.Since(start)}
			if res.err != nil {
				ev.Status, ev.Err = StatusError, res.err
			}
			opts.emit(ev)
			fspan.WithExtra("words", strconv.Itoa(res.acc.Total())).End(string(ev.Status))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("error")
		return nil, err
	}
	opts.Timer.End(phase, fmt.Sprintf("%d files", len(files)))

	merge := opts.Timer.Begin("merge")
	defer opts.Timer.End(merge, "")

	out := &Result{Bag: diag.NewBag(opts.maxDiagnostics())}
	for i, path := range files {
		if loadErrs[i] != nil {
			out.Bag.Add(loadDiagnostic(path, loadErrs[i]))
			continue
		}
		res := results[i]
		res.rebase(source.Start)
		if res.err != nil {
			span.End("error")
			return nil, fmt.Errorf("%s: %w", path, res.err)
		}
		if out.Acc == nil {
			out.Acc = res.acc
		} else if err := out.Acc.Merge(res.acc); err != nil {
			span.End("error")
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out.Bag.Merge(res.bag)
		out.Files = append(out.Files, path)
		out.Bytes += sizes[i]
		out.Chunks++
	}
	if out.Acc == nil {
		out.Acc = stats.New(opts.Stats)
	}
	span.WithExtra("words", strconv.Itoa(out.Acc.Total())).End("")
	return out, nil
}

func loadDiagnostic(path string, err error) diag.Diagnostic {
	code := diag.IOLoadFileError
	if errors.Is(err, ErrFileTooLarge) {
		code = diag.IOFileTooLarge
	}
	return diag.NewError(code, source.Span{}, "failed to load file: "+err.Error()).WithPath(path)
}
