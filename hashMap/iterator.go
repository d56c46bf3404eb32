package hashMap

import "github.com/hneemann/dslib/chain"

type mapIterator[V any] struct {
	m       *Map[V]
	index   int
	current chain.Iterator[V]
}

// Iterator returns an iterator over all values. The buckets are visited in
// ascending order, the entries of a bucket in insertion order.
func (m *Map[V]) Iterator() chain.Iterator[V] {
	it := &mapIterator[V]{m: m}
	it.advance()
	return it
}

// advance moves to the next bucket holding entries, starting at index
func (it *mapIterator[V]) advance() {
	for it.index < Capacity {
		q := it.m.buckets[it.index]
		it.index++
		if q != nil && !q.IsEmpty() {
			it.current = q.Iterator()
			return
		}
	}
	it.current = nil
}

func (it *mapIterator[V]) HasNext() bool {
	for it.current != nil && !it.current.HasNext() {
		it.advance()
	}
	return it.current != nil
}

func (it *mapIterator[V]) Next() (V, error) {
	if !it.HasNext() {
		var zero V
		return zero, chain.ErrExhausted
	}
	return it.current.Next()
}
