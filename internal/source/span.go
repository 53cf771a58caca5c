package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside a stream.
type Span struct {
	Start int64 // в байтах включительно
	End   int64 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() int64 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether off lies inside the span.
func (s Span) Contains(off int64) bool {
	return off >= s.Start && off < s.End
}

func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Shift moves the span by n bytes; used to rebase chunk-local spans.
func (s Span) Shift(n int64) Span {
	return Span{
		Start: s.Start + n,
		End:   s.End + n,
	}
}
