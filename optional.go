package peekable

// Optional is a single value container that can either have a value or not.
// It is the result type of every operation in this package that may have
// nothing to return: an exhausted source, a peek past the end of a buffer,
// and a peek beyond a configured capacity all produce the same empty
// Optional.
type Optional[T any] struct {
	inner  T
	isSome bool
}

// None creates an Optional with no value.
func None[T any]() Optional[T] {
	return Optional[T]{isSome: false}
}

// Some creates an Optional containing the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value, true}
}

// IsSome returns true if the optional contains a value.
func (self Optional[T]) IsSome() bool {
	return self.isSome
}

// IsNone returns true if the optional contains no value.
func (self Optional[T]) IsNone() bool {
	return !self.isSome
}

// Unwrap returns the contained value or panics if the Optional is empty.
func (self Optional[T]) Unwrap() T {
	if !self.isSome {
		panic("tried to unwrap empty optional")
	}
	return self.inner
}

// UnwrapOr returns the contained value or the given fallback if the
// Optional is empty.
func (self Optional[T]) UnwrapOr(fallback T) T {
	if self.isSome {
		return self.inner
	}
	return fallback
}

// Get is like Unwrap but returns a pointer to the contained value.
func (self *Optional[T]) Get() *T {
	if !self.isSome {
		panic("tried to unwrap empty optional")
	}
	return &self.inner
}

// Take takes the value out of the Optional, leaving the original without a
// value.
func (self *Optional[T]) Take() Optional[T] {
	taken := *self
	var empty T
	self.inner = empty
	self.isSome = false
	return taken
}

// Then calls the given function with the contained value, if there is one.
func (self Optional[T]) Then(f func(T)) {
	if self.isSome {
		f(self.inner)
	}
}
