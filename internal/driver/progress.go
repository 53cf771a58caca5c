package driver

import (
	"fmt"
	"time"
)

// Stage describes a step of the analysis.
type Stage string

const (
	// StageScan tokenizes and counts one file or chunk.
	StageScan Stage = "scan"
	// StageMerge combines per-chunk accumulators in order.
	StageMerge Stage = "merge"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file or one of its chunks. An empty File
// describes the run as a whole.
type Event struct {
	File    string
	Chunk   int // индекс чанка; -1 для файла целиком
	Chunks  int // число чанков файла; 1 при последовательном чтении
	Stage   Stage
	Status  Status
	Bytes   int64
	Err     error
	Elapsed time.Duration
}

// Label names the progress item the event belongs to.
func (e Event) Label() string {
	if e.Chunk >= 0 && e.Chunks > 1 {
		return fmt.Sprintf("%s [%d/%d]", e.File, e.Chunk+1, e.Chunks)
	}
	return e.File
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel. Sends block, so the
// consumer must drain Ch until the analysis returns.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }
