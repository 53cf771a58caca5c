// Package reverse implements the number reversal task: lines come out in
// reverse order and the integers of each line in reverse order too.
package reverse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/scanner"
)

// Numbers reads integers line by line from r and writes them reversed to w.
// Anything that is not an integer fitting in int is ignored; a line without
// integers becomes an empty line.
func Numbers(r io.Reader, w io.Writer, opts scanner.Options) error {
	var (
		values []int
		ends   = intlist.New() // конец каждой строки в values
	)
	lines := scanner.New(r, opts)
	for {
		line, ok, err := lines.NextLine()
		if err != nil {
			return fmt.Errorf("reverse: %w", err)
		}
		if !ok {
			break
		}
		sc := scanner.NewString(line, opts)
		for {
			n, ok, err := sc.NextInt()
			if err != nil {
				if scanner.IsSkippable(err) {
					continue
				}
				return fmt.Errorf("reverse: %w", err)
			}
			if !ok {
				break
			}
			values = append(values, n)
		}
		if len(values) > intlist.MaxCapacity {
			return fmt.Errorf("reverse: too many numbers (%d)", len(values))
		}
		ends.Add(int32(len(values)))
	}

	bw := bufio.NewWriter(w)
	var num []byte
	for i := ends.Len() - 1; i >= 0; i-- {
		end, _ := ends.Get(i)
		start := int32(0)
		if i > 0 {
			start, _ = ends.Get(i - 1)
		}
		for j := end - 1; j >= start; j-- {
			if j != end-1 {
				bw.WriteByte(' ')
			}
			num = strconv.AppendInt(num[:0], int64(values[j]), 10)
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("reverse: write: %w", err)
	}
	return nil
}
