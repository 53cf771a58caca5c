package scanner

import (
	"io"
	"unicode/utf8"

	"textanalyzer/internal/source"
)

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// cursor: окно фиксированного размера поверх io.Reader.
// buf[pos:end] ещё не прочитано; off/line/col описывают buf[pos].
type cursor struct {
	r   io.Reader
	buf []byte
	pos int
	end int
	err error // липкая ошибка чтения, io.EOF в конце потока

	off  int64
	line uint32
	col  uint32
}

func newCursor(r io.Reader, size int) cursor {
	return cursor{
		r:    r,
		buf:  make([]byte, size),
		line: source.Start.Line,
		col:  source.Start.Col,
	}
}

func (c *cursor) buffered() int { return c.end - c.pos }

// fill сдвигает непрочитанный хвост в начало буфера и дочитывает,
// пока не наберётся n байт или reader не вернёт ошибку.
func (c *cursor) fill(n int) {
	if c.pos > 0 {
		copy(c.buf, c.buf[c.pos:c.end])
		c.end -= c.pos
		c.pos = 0
	}
	empty := 0
	for c.buffered() < n && c.err == nil && c.end < len(c.buf) {
		m, err := c.r.Read(c.buf[c.end:])
		if m < 0 || m > len(c.buf)-c.end {
			panic("scanner: reader returned invalid count")
		}
		c.end += m
		if err != nil {
			c.err = err
			break
		}
		if m == 0 {
			empty++
			if empty >= maxEmptyReads {
				c.err = io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
}

// ensure returns how many bytes are buffered, refilling when fewer than n.
func (c *cursor) ensure(n int) int {
	if c.buffered() < n && c.err == nil {
		c.fill(n)
	}
	return c.buffered()
}

// peekByte returns the byte i positions ahead.
func (c *cursor) peekByte(i int) (byte, bool) {
	if c.ensure(i+1) <= i {
		return 0, false
	}
	return c.buf[c.pos+i], true
}

// peekRune decodes the next rune without consuming it. A rune split across
// two reads is reassembled first. size == 0 means the stream is exhausted.
func (c *cursor) peekRune() (r rune, size int) {
	if c.ensure(utf8.UTFMax) == 0 {
		return utf8.RuneError, 0
	}
	if b := c.buf[c.pos]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.buf[c.pos:c.end])
}

// advance consumes one rune of size bytes and returns its bytes.
// The slice is only valid until the next refill.
func (c *cursor) advance(size int) []byte {
	b := c.buf[c.pos : c.pos+size]
	c.pos += size
	c.off += int64(size)
	c.col++
	return b
}

// newline consumes a line terminator of size bytes.
func (c *cursor) newline(size int) {
	c.pos += size
	c.off += int64(size)
	c.line++
	c.col = 1
}

// readErr is the pending read failure, io.EOF excluded.
func (c *cursor) readErr() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}

func (c *cursor) lineCol() source.LineCol {
	return source.LineCol{Line: c.line, Col: c.col}
}

func (c *cursor) position() source.Pos {
	return source.Pos{Offset: c.off, LineCol: c.lineCol()}
}
