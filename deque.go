package peekable

// deque is a double-ended queue with a fixed capacity, backed by a single
// slice allocated at construction. Pushing into a full deque overwrites the
// element at the opposite end instead of growing; nothing here ever
// reallocates.
type deque[T any] struct {
	buf  []T
	head int
	size int
}

// newDeque creates an empty deque with the given capacity. A capacity of
// zero is allowed and yields a deque that silently discards all pushes.
func newDeque[T any](capacity int) deque[T] {
	if capacity < 0 {
		capacity = 0
	}
	return deque[T]{buf: make([]T, capacity)}
}

func (self *deque[T]) Len() int {
	return self.size
}

func (self *deque[T]) Cap() int {
	return len(self.buf)
}

// index maps a logical position (0 = front) to a position in the backing
// slice. Only valid for non-zero capacity.
func (self *deque[T]) index(i int) int {
	return (self.head + i) % len(self.buf)
}

// Get returns a pointer to the i-th element from the front, or nil if there
// is no such element. The pointer is valid until the element is popped or
// overwritten.
func (self *deque[T]) Get(i int) *T {
	if i < 0 || i >= self.size {
		return nil
	}
	return &self.buf[self.index(i)]
}

// PushBack appends a value at the back. If the deque is full the front
// element is overwritten.
func (self *deque[T]) PushBack(value T) {
	if len(self.buf) == 0 {
		return
	}
	if self.size == len(self.buf) {
		self.buf[self.head] = value
		self.head = self.index(1)
	} else {
		self.buf[self.index(self.size)] = value
		self.size++
	}
}

// PushFront prepends a value at the front. If the deque is full the back
// element is overwritten.
func (self *deque[T]) PushFront(value T) {
	if len(self.buf) == 0 {
		return
	}
	self.head = self.index(len(self.buf) - 1)
	self.buf[self.head] = value
	if self.size < len(self.buf) {
		self.size++
	}
}

// PopFront removes and returns the front element. The vacated slot is
// zeroed so the deque does not keep references alive.
func (self *deque[T]) PopFront() Optional[T] {
	if self.size == 0 {
		return None[T]()
	}
	value := self.buf[self.head]
	var empty T
	self.buf[self.head] = empty
	self.head = self.index(1)
	self.size--
	return Some(value)
}
