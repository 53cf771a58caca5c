package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"fortio.org/safecast"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/scanner"
	"textanalyzer/internal/stats"
)

// WritePositions writes one "<word> <count> <positions...>" line per word.
func WritePositions(w io.Writer, acc *stats.Accumulator) error {
	bw := bufio.NewWriter(w)
	var num []byte
	for _, e := range acc.Entries() {
		if err := checkWord(e.Word); err != nil {
			return err
		}
		bw.WriteString(e.Word)
		bw.WriteByte(' ')
		num = strconv.AppendInt(num[:0], int64(e.Count()), 10)
		bw.Write(num)
		for _, p := range e.Positions.All() {
			bw.WriteByte(' ')
			num = strconv.AppendInt(num[:0], int64(p), 10)
			bw.Write(num)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("export: write positions: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write positions: %w", err)
	}
	return nil
}

// ParsePositions reads the WritePositions format back. Blank lines are
// skipped. The total is the sum of all counts, and positions must cover
// 1..total exactly once.
func ParsePositions(r io.Reader, opts stats.Options) (*stats.Accumulator, error) {
	// NextLine, а не bufio.Scanner: строка частого слова легко длиннее 64 KiB
	sc := scanner.New(r, scanner.Options{})
	var entries []stats.Entry
	total := 0
	for lineNo := 1; ; lineNo++ {
		line, ok, err := sc.NextLine()
		if err != nil {
			return nil, fmt.Errorf("export: read positions: %w", err)
		}
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, badRecord(lineNo, "expected \"<word> <count> <positions...>\", got %q", line)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 1 {
			return nil, badRecord(lineNo, "invalid count %q", fields[1])
		}
		if got := len(fields) - 2; got != count {
			return nil, badRecord(lineNo, "word %q: count %d but %d positions", fields[0], count, got)
		}
		list := intlist.WithCapacity(count)
		for _, f := range fields[2:] {
			p, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, badRecord(lineNo, "invalid position %q", f)
			}
			p32, err := safecast.Conv[int32](p)
			if err != nil {
				return nil, badRecord(lineNo, "position %s out of range", f)
			}
			if last, ok := list.Last(); ok && p32 <= last {
				return nil, badRecord(lineNo, "word %q: positions must be strictly increasing", fields[0])
			}
			list.Add(p32)
		}
		entries = append(entries, stats.Entry{Word: fields[0], Positions: list})
		total += count
	}
	acc := stats.New(opts)
	if err := acc.Restore(total, entries); err != nil {
		return nil, fmt.Errorf("export: parse positions: %w", err)
	}
	return acc, nil
}

func checkWord(word string) error {
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrUnencodable, word)
	}
	return nil
}
