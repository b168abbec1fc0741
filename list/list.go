/*
Package list implements a singly linked list whose chain ends in a terminal sentinel node.

Every operation walks the chain recursively from the head and re-links nodes
on the way back, so all positional operations are O(n).
*/
package list

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	head   node[T]
	logger hclog.Logger
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &List[T]{
		head:   terminal[T]{},
		logger: o.logger,
	}
}

func (l *List[T]) front() node[T] {
	if l.head == nil {
		l.head = terminal[T]{}
	}
	return l.head
}

// Len returns the number of elements in list l.
func (l *List[T]) Len() int {
	return l.front().count(0)
}

// Values returns the elements of list l in order.
func (l *List[T]) Values() []T {
	return l.front().appendValues(nil)
}

// Put inserts a value at the back of list l.
func (l *List[T]) Put(value T) {
	l.head = l.front().put(value)
}

// Push inserts a value at the front of list l.
func (l *List[T]) Push(value T) {
	l.head = newLink[T](value, l.front())
}

// Take removes the back element of list l and returns its value.
// It returns false if the list is empty.
//
// Take walks the list three times: once for the value, once for the length
// and once more to unlink the last element.
func (l *List[T]) Take() (value T, ok bool) {
	value, ok = l.front().last()
	if !ok {
		return value, false
	}

	if err := l.Remove(l.Len() - 1); err != nil {
		panic("list: " + err.Error())
	}

	return value, true
}

// Pull removes the front element of list l and returns its value.
// It returns false if the list is empty.
func (l *List[T]) Pull() (value T, ok bool) {
	switch head := l.front().(type) {
	case *link[T]:
		l.head = head.next
		head.next = nil
		return head.value, true

	default:
		return value, false
	}
}

// Get returns the value at index i.
func (l *List[T]) Get(i int) (value T, err error) {
	if i >= 0 {
		if value, ok := l.front().get(i, 0); ok {
			return value, nil
		}
	}

	return value, l.outOfRange("get", i)
}

// Set replaces the value at index i. If i equals the length of the list,
// the value is appended instead.
func (l *List[T]) Set(i int, value T) error {
	if i >= 0 {
		if head, ok := l.front().set(i, 0, value); ok {
			l.head = head
			return nil
		}
	}

	return l.outOfRange("set", i)
}

// Remove removes the element at index i.
func (l *List[T]) Remove(i int) error {
	if i >= 0 {
		if head, ok := l.front().remove(i, 0); ok {
			l.head = head
			return nil
		}
	}

	return l.outOfRange("remove", i)
}

// Insert inserts a value before the element at index i. If i equals the
// length of the list, the value is appended.
func (l *List[T]) Insert(i int, value T) error {
	if i >= 0 {
		if head, ok := l.front().insert(i, 0, value); ok {
			l.head = head
			return nil
		}
	}

	return l.outOfRange("insert", i)
}

// RemoveAfter removes every element after index i. The element at i remains.
func (l *List[T]) RemoveAfter(i int) error {
	if i >= 0 && l.front().removeAfter(i, 0) {
		return nil
	}

	return l.outOfRange("remove after", i)
}

// RemoveBefore removes every element before index i, so the element at i
// becomes the front element. If i equals the length of the list, the list is
// cleared.
func (l *List[T]) RemoveBefore(i int) error {
	if i >= 0 {
		if head, ok := l.front().removeBefore(i, 0); ok {
			l.head = head
			return nil
		}
	}

	return l.outOfRange("remove before", i)
}

// Clear removes all elements from list l.
func (l *List[T]) Clear() {
	l.head = terminal[T]{}
}

func (l *List[T]) outOfRange(op string, i int) error {
	n := l.Len()

	if l.logger != nil {
		l.logger.Debug("index out of range", "op", op, "index", i, "length", n)
	}

	return errors.Wrapf(ErrIndexOutOfRange, "%s %d: length %d", op, i, n)
}
