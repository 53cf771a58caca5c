package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"textanalyzer/internal/intlist"
	"textanalyzer/internal/stats"
)

// SnapshotSchema: увеличивать при изменении формата Snapshot.
const SnapshotSchema uint16 = 1

// Snapshot is the lossless msgpack form of an accumulator.
type Snapshot struct {
	Schema uint16
	Total  int
	Words  []SnapshotWord
}

// SnapshotWord is one word with its positions.
type SnapshotWord struct {
	Word      string
	Positions []int32
}

// NewSnapshot captures acc in first-seen order.
func NewSnapshot(acc *stats.Accumulator) *Snapshot {
	s := &Snapshot{Schema: SnapshotSchema, Total: acc.Total()}
	s.Words = make([]SnapshotWord, 0, acc.Distinct())
	for _, e := range acc.Entries() {
		s.Words = append(s.Words, SnapshotWord{Word: e.Word, Positions: e.Positions.ToArray()})
	}
	return s
}

// Accumulator rebuilds a validated accumulator from the snapshot.
func (s *Snapshot) Accumulator(opts stats.Options) (*stats.Accumulator, error) {
	if s.Schema != SnapshotSchema {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, s.Schema, SnapshotSchema)
	}
	entries := make([]stats.Entry, 0, len(s.Words))
	for _, w := range s.Words {
		entries = append(entries, stats.Entry{Word: w.Word, Positions: intlist.Of(w.Positions...)})
	}
	acc := stats.New(opts)
	if err := acc.Restore(s.Total, entries); err != nil {
		return nil, fmt.Errorf("export: snapshot: %w", err)
	}
	return acc, nil
}

// WriteSnapshot encodes acc as msgpack.
func WriteSnapshot(w io.Writer, acc *stats.Accumulator) error {
	if err := msgpack.NewEncoder(w).Encode(NewSnapshot(acc)); err != nil {
		return fmt.Errorf("export: encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader, opts stats.Options) (*stats.Accumulator, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("export: decode snapshot: %w", err)
	}
	return s.Accumulator(opts)
}

// SaveSnapshot writes the snapshot next to path and renames it into place.
func SaveSnapshot(path string, acc *stats.Accumulator) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("export: save snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = WriteSnapshot(f, acc); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: save snapshot: %w", err)
	}
	// атомарная замена
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("export: save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot file.
func LoadSnapshot(path string, opts stats.Options) (*stats.Accumulator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: load snapshot: %w", err)
	}
	defer f.Close()
	acc, err := ReadSnapshot(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return acc, nil
}
