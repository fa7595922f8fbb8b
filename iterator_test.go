package peekable

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestSliceIter(t *testing.T) {
	it := NewSliceIter([]string{"a", "b", "c"})
	if got := Collect[string](&it); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("collected %v", got)
	}
	if it.Next().IsSome() {
		t.Error("expected exhaustion")
	}
}

func TestSliceIterEmpty(t *testing.T) {
	it := NewSliceIter([]int{})
	if it.Next().IsSome() {
		t.Error("expected exhaustion")
	}
}

func TestRangeIter(t *testing.T) {
	it := NewRange(2, 6)
	if got := Collect[int](&it); !slices.Equal(got, []int{2, 3, 4, 5}) {
		t.Errorf("collected %v", got)
	}
	empty := NewRange(5, 5)
	if empty.Next().IsSome() {
		t.Error("expected empty range to be exhausted")
	}
}

func TestFuncIter(t *testing.T) {
	n := 0
	it := FuncIter[int](func() Optional[int] {
		n++
		if n > 3 {
			return None[int]()
		}
		return Some(n * 10)
	})
	if got := Collect[int](it); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("collected %v", got)
	}
}

func TestFuseStopsResurrectingSource(t *testing.T) {
	// A source that yields a value, claims exhaustion, then resumes. The
	// fused wrapper must never surface the resumed values.
	calls := 0
	source := FuncIter[int](func() Optional[int] {
		calls++
		if calls == 2 {
			return None[int]()
		}
		return Some(calls)
	})
	fused := NewFuse[int](source)
	if fused.Next().Unwrap() != 1 {
		t.Error("expected 1 before exhaustion")
	}
	if fused.Next().IsSome() {
		t.Error("expected exhaustion")
	}
	for i := 0; i < 3; i++ {
		if fused.Next().IsSome() {
			t.Error("fused iterator resurrected")
		}
	}
	if calls != 2 {
		t.Errorf("inner iterator called %d times after exhaustion", calls-2)
	}
}
