package intlist_test

import (
	"errors"
	"testing"

	"textanalyzer/internal/intlist"
)

func TestAddThousandToArray(t *testing.T) {
	l := intlist.New()
	if l.Cap() != intlist.DefaultCapacity {
		t.Fatalf("default capacity = %d", l.Cap())
	}
	for i := int32(0); i < 1000; i++ {
		l.Add(i)
	}
	arr := l.ToArray()
	if len(arr) != 1000 {
		t.Fatalf("len = %d, want 1000", len(arr))
	}
	for i, v := range arr {
		if v != int32(i) {
			t.Fatalf("arr[%d] = %d", i, v)
		}
	}
	// ToArray: копия
	arr[0] = -1
	if v, _ := l.Get(0); v != 0 {
		t.Fatalf("ToArray aliases the buffer")
	}
}

func TestAddThenGetLast(t *testing.T) {
	l := intlist.WithCapacity(0)
	for i := 0; i < 200; i++ {
		v := int32(i*7 - 300)
		before := l.Len()
		l.Add(v)
		if l.Len() != before+1 {
			t.Fatalf("size %d -> %d", before, l.Len())
		}
		got, err := l.Get(l.Len() - 1)
		if err != nil || got != v {
			t.Fatalf("Get(last) = %d, %v; want %d", got, err, v)
		}
		if last, ok := l.Last(); !ok || last != v {
			t.Fatalf("Last() = %d, %v", last, ok)
		}
		if l.Len() > l.Cap() {
			t.Fatalf("size %d exceeds capacity %d", l.Len(), l.Cap())
		}
	}
}

func TestGrowthFactor(t *testing.T) {
	l := intlist.New()
	caps := []int{l.Cap()}
	for i := 0; i < 100; i++ {
		l.Add(int32(i))
		if c := l.Cap(); c != caps[len(caps)-1] {
			caps = append(caps, c)
		}
	}
	want := []int{10, 15, 22, 33, 49, 73, 109}
	if len(caps) != len(want) {
		t.Fatalf("capacities %v, want %v", caps, want)
	}
	for i := range want {
		if caps[i] != want[i] {
			t.Fatalf("capacities %v, want %v", caps, want)
		}
	}
}

func TestBounds(t *testing.T) {
	l := intlist.Of(1, 2, 3)
	for _, idx := range []int{-1, 3, 100} {
		if _, err := l.Get(idx); !errors.Is(err, intlist.ErrIndexOutOfRange) {
			t.Errorf("Get(%d) err = %v", idx, err)
		}
		err := l.Set(idx, 9)
		var ie *intlist.IndexError
		if !errors.As(err, &ie) || ie.Index != idx || ie.Size != 3 {
			t.Errorf("Set(%d) err = %v", idx, err)
		}
	}
	if err := l.Set(1, 20); err != nil {
		t.Fatal(err)
	}
	if v, _ := l.Get(1); v != 20 {
		t.Fatalf("Set did not store, got %d", v)
	}
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := intlist.WithCapacity(100)
	a.Add(1)
	a.Add(2)
	b := intlist.Of(1, 2)
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatalf("%v and %v should be equal", a, b)
	}
	b.Add(3)
	if a.Equal(b) {
		t.Fatalf("different sizes compared equal")
	}
	var nilList *intlist.IntList
	if nilList.Equal(a) || !nilList.Equal(intlist.New()) {
		t.Fatalf("nil list comparison")
	}
}

// nil ведёт себя как пустой список.
func TestNilList(t *testing.T) {
	var nilList *intlist.IntList
	tests := []struct {
		name  string
		other *intlist.IntList
		want  bool
	}{
		{"nil vs nil", nil, true},
		{"nil vs empty", intlist.New(), true},
		{"nil vs non-empty", intlist.Of(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nilList.Equal(tt.other); got != tt.want {
				t.Fatalf("nil.Equal(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if tt.other != nil {
				if got := tt.other.Equal(nilList); got != tt.want {
					t.Fatalf("%v.Equal(nil) = %v, want %v", tt.other, got, tt.want)
				}
			}
		})
	}
	if nilList.Len() != 0 || !nilList.IsEmpty() {
		t.Fatalf("nil list should be empty")
	}
}

func TestSumAndSearch(t *testing.T) {
	l := intlist.Of(2147483647, 2147483647, -5)
	if got, want := l.Sum(), int64(2147483647)*2-5; got != want {
		t.Fatalf("Sum = %d, want %d", got, want)
	}
	if l.IndexOf(-5) != 2 || l.IndexOf(7) != -1 || !l.Contains(2147483647) {
		t.Fatalf("search failed on %v", l)
	}
	if intlist.New().Sum() != 0 {
		t.Fatalf("empty sum")
	}
}

func TestTrimClearClone(t *testing.T) {
	l := intlist.WithCapacity(64)
	for i := int32(0); i < 5; i++ {
		l.Add(i)
	}
	l.Trim()
	if l.Cap() != 5 || l.Len() != 5 {
		t.Fatalf("after Trim size=%d cap=%d", l.Len(), l.Cap())
	}
	c := l.Clone()
	l.Clear()
	if !l.IsEmpty() || l.Cap() != 5 {
		t.Fatalf("Clear must keep capacity: size=%d cap=%d", l.Len(), l.Cap())
	}
	if c.Len() != 5 || c.String() != "[0 1 2 3 4]" {
		t.Fatalf("clone = %v", c)
	}
	l.Add(9)
	if l.String() != "[9]" {
		t.Fatalf("reuse after Clear = %v", l)
	}
}

func TestAddAllAndIterate(t *testing.T) {
	l := intlist.Of(1, 2)
	l.AddAll(intlist.Of(3, 4, 5))
	l.AddAll(nil)
	var sum int32
	var last int
	for i, v := range l.All() {
		sum += v
		last = i
	}
	if sum != 15 || last != 4 {
		t.Fatalf("iteration sum=%d last=%d", sum, last)
	}
}

func TestCapacityPanics(t *testing.T) {
	tests := []struct {
		name string
		n    int
		err  error
	}{
		{"negative", -1, nil},
		{"too large", intlist.MaxCapacity + 1, intlist.ErrCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic")
				}
				if tt.err != nil {
					err, ok := r.(error)
					if !ok || !errors.Is(err, tt.err) {
						t.Fatalf("panic value %v, want %v", r, tt.err)
					}
				}
			}()
			intlist.WithCapacity(tt.n)
		})
	}
}

func TestZeroValueUsable(t *testing.T) {
	var l intlist.IntList
	l.Add(42)
	if v, err := l.Get(0); err != nil || v != 42 {
		t.Fatalf("zero value Add/Get: %d %v", v, err)
	}
}
