// Package peekable provides an iterator adapter with bounded multi-forward
// and multi-backward peeking.
//
// The adapter wraps any forward-only Iterator and adds the ability to
// inspect upcoming elements without consuming them and to look back at
// elements it already produced. Both directions are served from
// fixed-capacity ring buffers chosen at construction; peeking past a
// buffer's capacity, past the end of the source, or further back than the
// retained history all uniformly report "not available" as a nil pointer.
// Nothing allocates after construction.
package peekable

// Peekable wraps an Iterator with the ability to peek both the next values
// and the values it has already returned.
//
// Elements peeked forward are pulled from the source on demand and held
// until Next consumes them; elements returned by Next are copied into a
// history buffer that silently drops its oldest entry once full.
type Peekable[T any] struct {
	it  Fuse[T]
	bwd deque[T]
	fwd deque[T]
}

// NewPeekable creates a peekable wrapper for the given iterator.
//
// bwdSize is the number of already-returned elements retained for backward
// peeking, fwdSize the maximum forward peek distance. Either may be zero to
// disable that direction entirely.
func NewPeekable[T any](it Iterator[T], bwdSize, fwdSize int) Peekable[T] {
	return Peekable[T]{
		it:  NewFuse[T](it),
		bwd: newDeque[T](bwdSize),
		fwd: newDeque[T](fwdSize),
	}
}

// Next returns the next value, advancing the iterator. Once the source is
// exhausted and all pending forward peeks are drained, every call returns
// None.
func (self *Peekable[T]) Next() Optional[T] {
	value := self.fwd.PopFront()
	if value.IsNone() {
		value = self.it.Next()
	}
	value.Then(func(v T) {
		self.bwd.PushFront(v)
	})
	return value
}

// PeekFwd returns a reference to the next value without advancing the
// iterator, or nil if the source is exhausted or forward peeking is
// disabled. Successive peeks return the same value.
func (self *Peekable[T]) PeekFwd() *T {
	return self.PeekFwdNth(0)
}

// PeekFwdNth returns a reference to the value i positions ahead, where 0 is
// the value the next call to Next would return. It does not advance the
// iterator; successive peeks at the same position return the same value.
//
// Returns nil if i is at or beyond the forward buffer capacity, or if the
// source runs out before the requested position.
func (self *Peekable[T]) PeekFwdNth(i int) *T {
	if i < 0 || i >= self.fwd.Cap() {
		return nil
	}
	for self.fwd.Len() <= i {
		value := self.it.Next()
		if value.IsNone() {
			return nil
		}
		self.fwd.PushBack(value.Unwrap())
	}
	return self.fwd.Get(i)
}

// Peek is an alias for PeekFwd, for compatibility with other peekable
// iterator implementations.
func (self *Peekable[T]) Peek() *T {
	return self.PeekFwd()
}

// PeekNth is an alias for PeekFwdNth, for compatibility with other peekable
// iterator implementations.
func (self *Peekable[T]) PeekNth(i int) *T {
	return self.PeekFwdNth(i)
}

// PeekBwd returns a reference to the value last returned by Next, or nil if
// Next has not produced anything yet or backward peeking is disabled.
// Successive peeks return the same value.
func (self *Peekable[T]) PeekBwd() *T {
	return self.PeekBwdNth(0)
}

// PeekBwdNth returns a reference to the value Next produced i calls in the
// past, where 0 is the most recent one. It never advances the iterator.
//
// Returns nil if Next has not produced i+1 values yet, or if the requested
// value is older than the backward buffer capacity retains.
func (self *Peekable[T]) PeekBwdNth(i int) *T {
	return self.bwd.Get(i)
}
