package listMap

type listMapEntry[V any] struct {
	Key   string
	Value V
}

// ListMap is a small map keeping its entries in insertion order.
// Lookups are linear, so it is meant for a handful of entries.
type ListMap[V any] []listMapEntry[V]

func New[V any](size int) ListMap[V] {
	return make(ListMap[V], 0, size)
}

func (l ListMap[V]) Get(key string) (V, bool) {
	for _, e := range l {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

func (l *ListMap[V]) Put(key string, v V) {
	*l = l.Append(key, v)
}

// Append stores the value and returns the resulting map.
// An existing entry is overwritten.
func (l ListMap[V]) Append(key string, v V) ListMap[V] {
	for i := range l {
		if l[i].Key == key {
			l[i].Value = v
			return l
		}
	}
	return append(l, listMapEntry[V]{Key: key, Value: v})
}

func (l ListMap[V]) Size() int {
	return len(l)
}

func (l ListMap[V]) Iter(yield func(key string, v V) bool) {
	for _, e := range l {
		if !yield(e.Key, e.Value) {
			return
		}
	}
}
