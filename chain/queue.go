package chain

import (
	"fmt"
	"github.com/hneemann/iterator"
	"io"
)

// List is the contract shared by all singly linked containers
type List[V any] interface {
	Append(v V)
	RemoveFront() (V, bool)
	Get(index int) (V, bool)
	Set(index int, v V) (V, bool)
	Len() int
	Iterator() Iterator[V]
	ReverseIterator() Iterator[V]
}

var _ List[int] = (*Queue[int])(nil)

// node is a chain element. A keyed node is a map entry,
// all other nodes are plain list elements.
type node[V any] struct {
	keyed bool
	key   string
	code  int32
	value V
	next  *node[V]
}

// Queue is a singly linked FIFO chain. The queue owns the nodes reachable
// from head, tail only refers to the last of them.
// The zero Queue is an empty queue.
type Queue[V any] struct {
	head   *node[V]
	tail   *node[V]
	length int
}

// NewQueue creates an empty queue
func NewQueue[V any]() *Queue[V] {
	return &Queue[V]{}
}

// QueueOf creates a queue holding the given values in order
func QueueOf[V any](values ...V) *Queue[V] {
	q := &Queue[V]{}
	for _, v := range values {
		q.Append(v)
	}
	return q
}

// link appends the node and updates head, tail and length together
func (q *Queue[V]) link(n *node[V]) {
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
}

// Append adds a plain element to the end of the queue
func (q *Queue[V]) Append(v V) {
	q.link(&node[V]{value: v})
}

// AddKeyed adds a map entry to the end of the queue
func (q *Queue[V]) AddKeyed(key string, v V, code int32) {
	q.link(&node[V]{keyed: true, key: key, code: code, value: v})
}

// RemoveFront detaches the first element and returns its value.
// The bool is false if the queue was empty.
func (q *Queue[V]) RemoveFront() (V, bool) {
	n := q.head
	if n == nil {
		var zero V
		return zero, false
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.length--
	return n.value, true
}

func (q *Queue[V]) Enqueue(v V) {
	q.Append(v)
}

func (q *Queue[V]) Dequeue() (V, bool) {
	return q.RemoveFront()
}

func (q *Queue[V]) Len() int {
	return q.length
}

func (q *Queue[V]) IsEmpty() bool {
	return q.length == 0
}

func (q *Queue[V]) nodeAt(index int) *node[V] {
	if index < 0 || index >= q.length {
		return nil
	}
	n := q.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Get returns the element at the given index.
// An index out of range is reported by returning false.
func (q *Queue[V]) Get(index int) (V, bool) {
	n := q.nodeAt(index)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Set replaces the element at the given index and returns the previous one.
// An index out of range leaves the queue untouched and returns false.
func (q *Queue[V]) Set(index int, v V) (V, bool) {
	n := q.nodeAt(index)
	if n == nil {
		var zero V
		return zero, false
	}
	old := n.value
	n.value = v
	return old, true
}

func (q *Queue[V]) find(key string) *node[V] {
	for n := q.head; n != nil; n = n.next {
		if n.keyed && n.key == key {
			return n
		}
	}
	return nil
}

// Lookup returns the value of the entry with the given key
func (q *Queue[V]) Lookup(key string) (V, bool) {
	if n := q.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Update overwrites the value of the entry with the given key and
// returns the previous value. If there is no such entry, false is returned.
func (q *Queue[V]) Update(key string, v V) (V, bool) {
	if n := q.find(key); n != nil {
		old := n.value
		n.value = v
		return old, true
	}
	var zero V
	return zero, false
}

// EachKeyed calls yield for all map entries in chain order.
// It returns false if yield has stopped the iteration.
func (q *Queue[V]) EachKeyed(yield func(key string, v V) bool) bool {
	for n := q.head; n != nil; n = n.next {
		if n.keyed {
			if !yield(n.key, n.value) {
				return false
			}
		}
	}
	return true
}

// ToSlice returns all elements from head to tail
func (q *Queue[V]) ToSlice() []V {
	sl := make([]V, 0, q.length)
	for n := q.head; n != nil; n = n.next {
		sl = append(sl, n.value)
	}
	return sl
}

// Print writes every element on its own line
func (q *Queue[V]) Print(w io.Writer) error {
	if q.head == nil {
		_, err := fmt.Fprintln(w, "Empty List")
		return err
	}
	for n := q.head; n != nil; n = n.next {
		if _, err := fmt.Fprintln(w, n.value); err != nil {
			return err
		}
	}
	return nil
}

// All returns a producer visiting the elements from head to tail
func (q *Queue[V]) All() iterator.Producer[V] {
	return func(yield iterator.Consumer[V]) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value, nil) {
				return
			}
		}
	}
}

// Backward returns a producer visiting the elements from tail to head.
// Every run takes a fresh snapshot of the queue.
func (q *Queue[V]) Backward() iterator.Producer[V] {
	return func(yield iterator.Consumer[V]) {
		it := q.ReverseIterator()
		for it.HasNext() {
			v, err := it.Next()
			if !yield(v, err) {
				return
			}
		}
	}
}
