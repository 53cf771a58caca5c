package driver

import (
	"errors"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/observ"
	"textanalyzer/internal/scanner"
	"textanalyzer/internal/stats"
)

const (
	// DefaultMinChunkSize is the smallest byte range worth a separate worker.
	DefaultMinChunkSize int64 = 1 << 20
	// DefaultMaxDiagnostics bounds the result Bag when Options leaves it zero.
	DefaultMaxDiagnostics = 100
	// cancelCheckInterval is how many tokens pass between ctx checks.
	cancelCheckInterval = 1024
)

// ErrFileTooLarge is returned when an input exceeds Options.MaxFileSize.
var ErrFileTooLarge = errors.New("file too large")

// Options configures an analysis run.
type Options struct {
	Scanner scanner.Options // Reporter заменяется драйвером
	Stats   stats.Options

	Jobs         int   // ≤1: последовательно
	MinChunkSize int64 // нижняя граница размера чанка
	MaxFileSize  int64 // 0: без ограничения

	// SkipMalformed turns TokenTooLong and MalformedNumber into warnings
	// instead of aborting the run.
	SkipMalformed  bool
	MaxDiagnostics int

	Progress ProgressSink
	Timer    *observ.Timer
}

func (o Options) minChunk() int64 {
	if o.MinChunkSize <= 0 {
		return DefaultMinChunkSize
	}
	return o.MinChunkSize
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(ev)
	}
}

// Result is the merged outcome of a run.
type Result struct {
	Acc    *stats.Accumulator
	Bag    *diag.Bag
	Files  []string // проанализированные файлы в порядке слияния
	Bytes  int64
	Chunks int
}
