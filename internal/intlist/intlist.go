// Package intlist provides IntList, an append-friendly sequence of int32
// values stored in a single unboxed buffer.
//
// Growth is 1.5x (old + old/2) rather than 2x, capped at MaxCapacity.
// Running past MaxCapacity is fatal and panics with ErrCapacityExceeded;
// index errors are ordinary errors wrapping ErrIndexOutOfRange.
package intlist

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultCapacity is the capacity of a list created by New.
	DefaultCapacity = 10
	// MaxCapacity is the largest buffer the list will ever allocate.
	MaxCapacity = math.MaxInt32 - 8
)

var (
	// ErrIndexOutOfRange is wrapped by *IndexError.
	ErrIndexOutOfRange = errors.New("intlist: index out of range")
	// ErrCapacityExceeded is the panic value when MaxCapacity would be exceeded.
	ErrCapacityExceeded = errors.New("intlist: capacity exceeded")
)

// IndexError reports an access outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("intlist: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// IntList is a growable int32 sequence. The zero value is an empty list
// ready to use. Not safe for concurrent mutation.
type IntList struct {
	data []int32 // len(data) is the physical capacity
	size int
}

// New returns an empty list with DefaultCapacity.
func New() *IntList {
	return WithCapacity(DefaultCapacity)
}

// WithCapacity returns an empty list that can hold n values without growing.
// A negative or oversized n is a programming error and panics.
func WithCapacity(n int) *IntList {
	if n < 0 {
		panic(fmt.Errorf("intlist: negative capacity %d", n))
	}
	if n > MaxCapacity {
		panic(fmt.Errorf("%w: requested %d", ErrCapacityExceeded, n))
	}
	return &IntList{data: make([]int32, n)}
}

// Of builds a list holding values in order.
func Of(values ...int32) *IntList {
	l := WithCapacity(len(values))
	l.size = copy(l.data, values)
	return l
}

// Add appends v. Amortized O(1).
func (l *IntList) Add(v int32) {
	if l.size == len(l.data) {
		l.grow(l.size + 1)
	}
	l.data[l.size] = v
	l.size++
}

// AddAll appends every value of other in order.
func (l *IntList) AddAll(other *IntList) {
	if other == nil || other.size == 0 {
		return
	}
	if need := l.size + other.size; need > len(l.data) {
		l.grow(need)
	}
	copy(l.data[l.size:], other.data[:other.size])
	l.size += other.size
}

// grow ensures capacity for need values, following the 1.5x policy.
func (l *IntList) grow(need int) {
	if need > MaxCapacity || need < 0 {
		panic(fmt.Errorf("%w: need %d, max %d", ErrCapacityExceeded, need, MaxCapacity))
	}
	old := len(l.data)
	next := old + old>>1
	if next < need {
		next = need
	}
	if next > MaxCapacity || next < 0 {
		next = MaxCapacity
	}
	buf := make([]int32, next)
	copy(buf, l.data[:l.size])
	l.data = buf
}

// Get returns the value at index i.
func (l *IntList) Get(i int) (int32, error) {
	if i < 0 || i >= l.size {
		return 0, &IndexError{Index: i, Size: l.size}
	}
	return l.data[i], nil
}

// Set replaces the value at index i.
func (l *IntList) Set(i int, v int32) error {
	if i < 0 || i >= l.size {
		return &IndexError{Index: i, Size: l.size}
	}
	l.data[i] = v
	return nil
}

// Last returns the final value, or false when the list is empty.
func (l *IntList) Last() (int32, bool) {
	if l.size == 0 {
		return 0, false
	}
	return l.data[l.size-1], true
}

// Len returns the logical size.
func (l *IntList) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Cap returns the physical capacity.
func (l *IntList) Cap() int { return len(l.data) }

// IsEmpty reports whether the list has no values.
func (l *IntList) IsEmpty() bool { return l.Len() == 0 }

// Clear drops all values but keeps the buffer.
func (l *IntList) Clear() { l.size = 0 }

// Trim shrinks the buffer to the logical size. This is the only operation
// that reduces capacity.
func (l *IntList) Trim() {
	if len(l.data) == l.size {
		return
	}
	buf := make([]int32, l.size)
	copy(buf, l.data[:l.size])
	l.data = buf
}

// ToArray returns a copy of the values.
func (l *IntList) ToArray() []int32 {
	out := make([]int32, l.size)
	copy(out, l.data[:l.size])
	return out
}

// All iterates over index/value pairs in order.
func (l *IntList) All() iter.Seq2[int, int32] {
	return func(yield func(int, int32) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// Sum adds every value in 64-bit arithmetic; int32 inputs cannot overflow it
// below 2^32 elements, which MaxCapacity rules out.
func (l *IntList) Sum() int64 {
	var total int64
	for _, v := range l.data[:l.size] {
		total += int64(v)
	}
	return total
}

// IndexOf returns the first index of v, or -1.
func (l *IntList) IndexOf(v int32) int {
	for i, x := range l.data[:l.size] {
		if x == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present.
func (l *IntList) Contains(v int32) bool { return l.IndexOf(v) >= 0 }

// Equal compares logical contents; capacity is ignored.
func (l *IntList) Equal(other *IntList) bool {
	if l == nil || other == nil {
		return l.Len() == other.Len()
	}
	if l.size != other.size {
		return false
	}
	for i := 0; i < l.size; i++ {
		if l.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy trimmed to size.
func (l *IntList) Clone() *IntList {
	return &IntList{data: l.ToArray(), size: l.size}
}

// String renders the list as "[1 2 3]".
func (l *IntList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.data[:l.size] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
