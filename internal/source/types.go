package source

import "fmt"

// LineCol represents a human-readable position in a text stream.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, в рунах
}

// Start is the position of the first rune of any stream.
var Start = LineCol{Line: 1, Col: 1}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Before reports whether lc precedes other.
func (lc LineCol) Before(other LineCol) bool {
	if lc.Line != other.Line {
		return lc.Line < other.Line
	}
	return lc.Col < other.Col
}

// Pos combines a byte offset with its line/column.
type Pos struct {
	Offset int64 // 0-based, в байтах
	LineCol
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d@%d", p.Line, p.Col, p.Offset)
}
