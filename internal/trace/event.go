package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Scope is the granularity of an event; lower is coarser.
type Scope uint8

const (
	ScopeRun   Scope = iota + 1 // одна команда CLI
	ScopePhase                  // scan, merge, export
	ScopeFile                   // один входной файл
	ScopeChunk                  // один диапазон байт в параллельном режиме
	ScopeToken                  // отдельные токены, только debug
)

func (s Scope) String() string {
	switch s {
	case ScopeRun:
		return "run"
	case ScopePhase:
		return "phase"
	case ScopeFile:
		return "file"
	case ScopeChunk:
		return "chunk"
	case ScopeToken:
		return "token"
	default:
		return "unknown"
	}
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // проставляет tracer
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	GID      uint64
	Name     string
	Detail   string
	Extra    map[string]string
}
