package peekable

import (
	"golang.org/x/exp/constraints"
)

// Iterator describes any type producing a sequence of values with a Next
// method. Next returns an empty Optional once the sequence is exhausted;
// unless the iterator is also a Fuse there is no guarantee it stays
// exhausted.
type Iterator[T any] interface {
	Next() Optional[T]
}

// Fuse wraps an Iterator so that after the first empty result every
// following call returns an empty result as well, without invoking the
// inner iterator again.
type Fuse[T any] struct {
	it   Iterator[T]
	done bool
}

// NewFuse creates a fused wrapper for the given iterator.
func NewFuse[T any](it Iterator[T]) Fuse[T] {
	return Fuse[T]{it: it}
}

// Next returns the next value of the inner iterator, or None forever once
// the inner iterator has been exhausted.
func (self *Fuse[T]) Next() Optional[T] {
	if self.done {
		return None[T]()
	}
	value := self.it.Next()
	if value.IsNone() {
		self.done = true
	}
	return value
}

// SliceIter iterates over the elements of a slice in order.
type SliceIter[T any] struct {
	items []T
}

// NewSliceIter creates an iterator over the given slice. The slice is not
// copied; it must not be modified while iterating.
func NewSliceIter[T any](items []T) SliceIter[T] {
	return SliceIter[T]{items}
}

func (self *SliceIter[T]) Next() Optional[T] {
	if len(self.items) == 0 {
		return None[T]()
	}
	value := self.items[0]
	self.items = self.items[1:]
	return Some(value)
}

// RangeIter iterates over a half-open integer range.
type RangeIter[T constraints.Integer] struct {
	next, stop T
}

// NewRange creates an iterator yielding start, start+1, ... up to but not
// including stop.
func NewRange[T constraints.Integer](start, stop T) RangeIter[T] {
	return RangeIter[T]{start, stop}
}

func (self *RangeIter[T]) Next() Optional[T] {
	if self.next >= self.stop {
		return None[T]()
	}
	value := self.next
	self.next++
	return Some(value)
}

// FuncIter adapts a plain function to the Iterator interface.
type FuncIter[T any] func() Optional[T]

func (self FuncIter[T]) Next() Optional[T] {
	return self()
}

// Collect drains the iterator into a slice. Calling this on an infinite
// iterator does not return.
func Collect[T any](it Iterator[T]) []T {
	var result []T
	for value := it.Next(); value.IsSome(); value = it.Next() {
		result = append(result, value.Unwrap())
	}
	return result
}
