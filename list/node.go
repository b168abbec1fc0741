package list

// node is a position in the chain. The only implementations are *link and terminal.
//
// Every operation that can restructure the chain returns the node its caller
// must store in place of the receiver. Operations addressed by index also
// return whether the target index was reached; when it was not, the chain is
// left unchanged and removeBefore's result must not be adopted as a head.
type node[T any] interface {
	put(value T) node[T]
	last() (T, bool)
	lastFrom(prev T) T
	get(i, current int) (T, bool)
	set(i, current int, value T) (node[T], bool)
	remove(i, current int) (node[T], bool)
	insert(i, current int, value T) (node[T], bool)
	removeAfter(i, current int) bool
	removeBefore(i, current int) (node[T], bool)
	count(current int) int
	appendValues(dst []T) []T
}

var (
	_ node[int] = (*link[int])(nil)
	_ node[int] = terminal[int]{}
)

// link holds a value and the rest of the chain.
type link[T any] struct {
	value T
	next  node[T]
}

func newLink[T any](value T, next node[T]) *link[T] {
	return &link[T]{
		value: value,
		next:  next,
	}
}

func (l *link[T]) put(value T) node[T] {
	l.next = l.next.put(value)
	return l
}

func (l *link[T]) last() (T, bool) {
	return l.next.lastFrom(l.value), true
}

func (l *link[T]) lastFrom(T) T {
	return l.next.lastFrom(l.value)
}

func (l *link[T]) get(i, current int) (T, bool) {
	if i == current {
		return l.value, true
	}
	return l.next.get(i, current+1)
}

func (l *link[T]) set(i, current int, value T) (node[T], bool) {
	if i == current {
		l.value = value
		return l, true
	}

	next, ok := l.next.set(i, current+1, value)
	l.next = next

	return l, ok
}

func (l *link[T]) remove(i, current int) (node[T], bool) {
	if i == current {
		next := l.next
		l.next = nil
		return next, true
	}

	next, ok := l.next.remove(i, current+1)
	l.next = next

	return l, ok
}

func (l *link[T]) insert(i, current int, value T) (node[T], bool) {
	if i == current {
		return newLink[T](value, l), true
	}

	next, ok := l.next.insert(i, current+1, value)
	l.next = next

	return l, ok
}

func (l *link[T]) removeAfter(i, current int) bool {
	if i == current {
		l.next = terminal[T]{}
		return true
	}
	return l.next.removeAfter(i, current+1)
}

func (l *link[T]) removeBefore(i, current int) (node[T], bool) {
	if i == current {
		return l, true
	}
	return l.next.removeBefore(i, current+1)
}

func (l *link[T]) count(current int) int {
	return l.next.count(current + 1)
}

func (l *link[T]) appendValues(dst []T) []T {
	return l.next.appendValues(append(dst, l.value))
}

// terminal marks the end of the chain.
type terminal[T any] struct{}

func (t terminal[T]) put(value T) node[T] {
	return newLink[T](value, t)
}

func (terminal[T]) last() (value T, ok bool) {
	return value, false
}

func (terminal[T]) lastFrom(prev T) T {
	return prev
}

func (terminal[T]) get(int, int) (value T, ok bool) {
	return value, false
}

// set appends when i is exactly one past the last link.
func (t terminal[T]) set(i, current int, value T) (node[T], bool) {
	if i == current {
		return newLink[T](value, t), true
	}
	return t, false
}

func (t terminal[T]) remove(int, int) (node[T], bool) {
	return t, false
}

// insert appends when i is exactly one past the last link.
func (t terminal[T]) insert(i, current int, value T) (node[T], bool) {
	if i == current {
		return newLink[T](value, t), true
	}
	return t, false
}

func (terminal[T]) removeAfter(int, int) bool {
	return false
}

// removeBefore discards everything before it. Only an index exactly one past
// the last link counts as reached.
func (t terminal[T]) removeBefore(i, current int) (node[T], bool) {
	return t, i == current
}

func (terminal[T]) count(current int) int {
	return current
}

func (terminal[T]) appendValues(dst []T) []T {
	return dst
}
