package hashMap

import (
	"errors"
	"github.com/hneemann/dslib/chain"
	"github.com/hneemann/iterator"
)

// ErrInvalidKey is returned if an absent key is stored
var ErrInvalidKey = errors.New("key cannot be absent")

const (
	// Capacity is the fixed number of buckets
	Capacity = 10
	// bucketMask selects the bucket. It only keeps the bits 1001,
	// so entries end up in the buckets 0, 1, 8 and 9.
	bucketMask = 9
)

// Map is a fixed size hash table resolving collisions by chaining.
// Each bucket is a chain.Queue created on first use.
type Map[V any] struct {
	buckets [Capacity]*chain.Queue[V]
	size    int
}

// New creates an empty map
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Of creates a map holding a single entry
func Of[V any](key string, v V) *Map[V] {
	m := New[V]()
	m.Put(key, v)
	return m
}

// BucketIndex returns the bucket a key with the given hash code is stored in
func BucketIndex(code int32) int {
	return int(code & bucketMask)
}

func (m *Map[V]) bucket(key string) *chain.Queue[V] {
	return m.buckets[BucketIndex(Hash(key))]
}

// Put stores the value. An existing entry is updated in place.
func (m *Map[V]) Put(key string, v V) {
	code := Hash(key)
	idx := BucketIndex(code)
	q := m.buckets[idx]
	if q == nil {
		q = chain.NewQueue[V]()
		q.AddKeyed(key, v, code)
		m.buckets[idx] = q
		m.size++
		return
	}
	if _, found := q.Update(key, v); !found {
		q.AddKeyed(key, v, code)
		m.size++
	}
}

// PutKey is the same as Put but fails with ErrInvalidKey if the key is absent
func (m *Map[V]) PutKey(k Key, v V) error {
	key, ok := k.Get()
	if !ok {
		return ErrInvalidKey
	}
	m.Put(key, v)
	return nil
}

// Get returns the value stored for the given key
func (m *Map[V]) Get(key string) (V, bool) {
	if q := m.bucket(key); q != nil {
		return q.Lookup(key)
	}
	var zero V
	return zero, false
}

// GetKey is the same as Get. An absent key is never found.
func (m *Map[V]) GetKey(k Key) (V, bool) {
	key, ok := k.Get()
	if !ok {
		var zero V
		return zero, false
	}
	return m.Get(key)
}

func (m *Map[V]) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *Map[V]) ContainsKey(k Key) bool {
	_, ok := m.GetKey(k)
	return ok
}

// Replace overwrites the value of an existing entry and returns the
// previous value. Nothing is stored if the key is not found.
func (m *Map[V]) Replace(key string, v V) (V, bool) {
	if q := m.bucket(key); q != nil {
		return q.Update(key, v)
	}
	var zero V
	return zero, false
}

func (m *Map[V]) ReplaceKey(k Key, v V) (V, bool) {
	key, ok := k.Get()
	if !ok {
		var zero V
		return zero, false
	}
	return m.Replace(key, v)
}

func (m *Map[V]) Size() int {
	return m.size
}

func (m *Map[V]) IsEmpty() bool {
	return m.size == 0
}

// Iter calls yield for every entry in bucket-major order.
// It returns false if yield has stopped the iteration.
func (m *Map[V]) Iter(yield func(key string, v V) bool) bool {
	for _, q := range m.buckets {
		if q != nil {
			if !q.EachKeyed(yield) {
				return false
			}
		}
	}
	return true
}

// All returns a producer of all values in bucket-major order
func (m *Map[V]) All() iterator.Producer[V] {
	return func(yield iterator.Consumer[V]) {
		m.Iter(func(key string, v V) bool {
			return yield(v, nil)
		})
	}
}

// Buckets returns the chain length of every bucket
func (m *Map[V]) Buckets() [Capacity]int {
	var l [Capacity]int
	for i, q := range m.buckets {
		if q != nil {
			l[i] = q.Len()
		}
	}
	return l
}
