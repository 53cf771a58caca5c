package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/stats"
)

var csvHeader = []string{"word", "frequency", "positions"}

// WriteFrequencyCSV writes one row per word, most frequent first.
// Positions are joined with single spaces and the field is always quoted;
// the word field is quoted only when CSV requires it.
func WriteFrequencyCSV(w io.Writer, acc *stats.Accumulator) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(csvHeader, ","))
	bw.WriteByte('\n')
	for _, e := range acc.WordsByFrequency() {
		writeCSVField(bw, e.Word)
		bw.WriteByte(',')
		bw.WriteString(strconv.Itoa(e.Count()))
		bw.WriteString(`,"`)
		for i, p := range e.Positions.All() {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(int64(p), 10))
		}
		bw.WriteString("\"\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

// writeCSVField пишет поле по правилам encoding/csv: кавычки, только если нужны.
func writeCSVField(bw *bufio.Writer, field string) {
	if !csvNeedsQuotes(field) {
		bw.WriteString(field)
		return
	}
	bw.WriteByte('"')
	bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
	bw.WriteByte('"')
}

func csvNeedsQuotes(field string) bool {
	if field == "" {
		return false
	}
	if field == `\.` || strings.ContainsAny(field, ",\"\r\n") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(field)
	return unicode.IsSpace(r)
}

// ParseFrequencyCSV reads WriteFrequencyCSV output. Row order does not
// matter: words are restored in order of their first position.
func ParseFrequencyCSV(r io.Reader, opts stats.Options) (*stats.Accumulator, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, badRecord(1, "missing header")
		}
		return nil, csvError(err)
	}
	if strings.Join(header, ",") != strings.Join(csvHeader, ",") {
		return nil, badRecord(1, "unexpected header %q", strings.Join(header, ","))
	}
	var entries []stats.Entry
	total := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		count, err := strconv.Atoi(rec[1])
		if err != nil || count < 1 {
			return nil, badRecord(line, "invalid frequency %q", rec[1])
		}
		fields := strings.Fields(rec[2])
		if len(fields) != count {
			return nil, badRecord(line, "word %q: frequency %d but %d positions", rec[0], count, len(fields))
		}
		list := intlist.WithCapacity(count)
		for _, f := range fields {
			p, err := strconv.ParseInt(f, 10, 32)
			if err != nil {
				return nil, badRecord(line, "invalid position %q", f)
			}
			list.Add(int32(p))
		}
		entries = append(entries, stats.Entry{Word: rec[0], Positions: list})
		total += count
	}
	sortByFirstPosition(entries)
	acc := stats.New(opts)
	if err := acc.Restore(total, entries); err != nil {
		return nil, fmt.Errorf("export: parse csv: %w", err)
	}
	return acc, nil
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Msg: pe.Err.Error(), Err: err}
	}
	return fmt.Errorf("export: read csv: %w", err)
}
