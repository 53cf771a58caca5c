package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textanalyzer/internal/stats"
)

// Format is an on-disk statistics format.
type Format uint8

const (
	FormatPositions Format = iota
	FormatCSV
	FormatSnapshot
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatSnapshot:
		return "msgpack"
	default:
		return "positions"
	}
}

// DetectFormat picks the format by file extension: .csv, .msgpack/.mp,
// anything else is the positions text format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".msgpack", ".mp":
		return FormatSnapshot
	default:
		return FormatPositions
	}
}

// LoadFile reads statistics from path in the format DetectFormat reports.
func LoadFile(path string, opts stats.Options) (*stats.Accumulator, error) {
	format := DetectFormat(path)
	if format == FormatSnapshot {
		return LoadSnapshot(path, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: load %s: %w", format, err)
	}
	defer f.Close()

	var acc *stats.Accumulator
	if format == FormatCSV {
		acc, err = ParseFrequencyCSV(f, opts)
	} else {
		acc, err = ParsePositions(f, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return acc, nil
}
