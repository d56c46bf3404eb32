package chain

import (
	"errors"
	"github.com/hneemann/dslib/stack"
)

// ErrExhausted is returned by Next if there are no elements left
var ErrExhausted = errors.New("no more elements to iterate")

// Iterator is a single pass cursor over a container.
// HasNext needs to be checked before calling Next.
type Iterator[V any] interface {
	HasNext() bool
	Next() (V, error)
}

// forward keeps a reference to its current node, so elements removed
// from the queue after the iterator was created are still visited.
type forward[V any] struct {
	cur *node[V]
}

// Iterator returns an iterator walking from head to tail
func (q *Queue[V]) Iterator() Iterator[V] {
	return &forward[V]{cur: q.head}
}

func (f *forward[V]) HasNext() bool {
	return f.cur != nil
}

func (f *forward[V]) Next() (V, error) {
	n := f.cur
	if n == nil {
		var zero V
		return zero, ErrExhausted
	}
	f.cur = n.next
	return n.value, nil
}

type reverse[V any] struct {
	buf *stack.SimpleStack[V]
}

// ReverseIterator returns an iterator walking from tail to head.
// All elements are copied when the iterator is created, so later
// changes of the queue are not visible to it.
func (q *Queue[V]) ReverseIterator() Iterator[V] {
	buf := stack.New[V](q.length)
	for n := q.head; n != nil; n = n.next {
		buf.Push(n.value)
	}
	return &reverse[V]{buf: buf}
}

func (r *reverse[V]) HasNext() bool {
	return !r.buf.IsEmpty()
}

func (r *reverse[V]) Next() (V, error) {
	v, ok := r.buf.Pop()
	if !ok {
		return v, ErrExhausted
	}
	return v, nil
}

// Drain reads all remaining elements from the iterator
func Drain[V any](it Iterator[V]) []V {
	var sl []V
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		sl = append(sl, v)
	}
	return sl
}
