package hashMap

import (
	"fmt"
	"github.com/hneemann/dslib/chain"
	"github.com/hneemann/iterator"
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestHash(t *testing.T) {
	assert.Equal(t, int32(0), Hash(""))
	assert.Equal(t, int32(97), Hash("a"))
	assert.Equal(t, int32(2112), Hash("Aa"))
	assert.Equal(t, Hash("Aa"), Hash("BB"))
	assert.Equal(t, int32(99162322), Hash("hello"))
	assert.NotEqual(t, Hash("Key"), Hash("key"))
	// surrogate pair: U+1F600 is encoded as D83D DE00
	assert.Equal(t, int32(0xD83D*31+0xDE00), Hash("\U0001F600"))
}

func TestBucketIndexRange(t *testing.T) {
	m := New[int]()
	for i := 0; i < 500; i++ {
		m.Put(fmt.Sprintf("key%d", i), i)
	}
	assert.Equal(t, 500, m.Size())
	b := m.Buckets()
	sum := 0
	for i, l := range b {
		if i >= 2 && i <= 7 {
			assert.Equal(t, 0, l, "bucket %d", i)
		}
		sum += l
	}
	assert.Equal(t, 500, sum)
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 0, BucketIndex(Hash("Aa")))
	assert.Equal(t, 1, BucketIndex(Hash("a")))
	assert.Equal(t, 9, BucketIndex(-1))
	assert.Equal(t, 8, BucketIndex(8))
	assert.Equal(t, 0, BucketIndex(6))
}

func TestConstructed(t *testing.T) {
	m := Of("key1", "value1")
	assert.Equal(t, 1, m.Size())
	assert.False(t, m.IsEmpty())

	m.Put("key2", "value2")
	assert.Equal(t, 2, m.Size())
	v, ok := m.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", v)
}

func TestPutUpdates(t *testing.T) {
	m := Of("key1", "value1")
	m.Put("key1", "newValue1")
	assert.Equal(t, 1, m.Size())
	v, ok := m.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "newValue1", v)
}

func TestCollisions(t *testing.T) {
	m := New[int]()
	// same hash code
	m.Put("Aa", 1)
	m.Put("BB", 2)
	// different hash codes, same bucket
	m.Put("a", 3)
	m.Put("c", 4)
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, BucketIndex(Hash("a")), BucketIndex(Hash("c")))

	for k, exp := range map[string]int{"Aa": 1, "BB": 2, "a": 3, "c": 4} {
		v, ok := m.Get(k)
		assert.True(t, ok, k)
		assert.Equal(t, exp, v, k)
	}

	m.Put("BB", 5)
	assert.Equal(t, 4, m.Size())
	v, _ := m.Get("Aa")
	assert.Equal(t, 1, v)
	v, _ = m.Get("BB")
	assert.Equal(t, 5, v)
}

func TestMissingKey(t *testing.T) {
	m := Of("key1", "value1")
	m.Put("key2", "value2")

	_, ok := m.Get("absentKey")
	assert.False(t, ok)
	assert.False(t, m.Contains("absentKey"))
	_, ok = m.Replace("absentKey", "x")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Size())
	v, _ := m.Get("key1")
	assert.Equal(t, "value1", v)
	v, _ = m.Get("key2")
	assert.Equal(t, "value2", v)

	e := New[string]()
	_, ok = e.Get("x")
	assert.False(t, ok)
	_, ok = e.Replace("x", "y")
	assert.False(t, ok)
	assert.True(t, e.IsEmpty())
}

func TestReplace(t *testing.T) {
	m := Of("a", 1)
	old, ok := m.Replace("a", 2)
	assert.True(t, ok)
	assert.Equal(t, 1, old)
	v, _ := m.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Size())
}

func TestAbsentKey(t *testing.T) {
	m := Of("a", 1)
	assert.ErrorIs(t, m.PutKey(None, 7), ErrInvalidKey)
	assert.Equal(t, 1, m.Size())

	_, ok := m.GetKey(None)
	assert.False(t, ok)
	assert.False(t, m.ContainsKey(None))
	_, ok = m.ReplaceKey(None, 3)
	assert.False(t, ok)

	assert.NoError(t, m.PutKey(Some("b"), 2))
	assert.True(t, m.ContainsKey(Some("b")))
	old, ok := m.ReplaceKey(Some("b"), 4)
	assert.True(t, ok)
	assert.Equal(t, 2, old)
	v, ok := m.GetKey(Some("b"))
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	assert.Equal(t, "nil", None.String())
	assert.Equal(t, "b", Some("b").String())
}

func TestEmptyStringKey(t *testing.T) {
	m := New[int]()
	assert.NoError(t, m.PutKey(Some(""), 1))
	v, ok := m.Get("")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestIterator(t *testing.T) {
	m := New[int]()
	want := []int{}
	for i := 0; i < 50; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
		want = append(want, i)
	}
	m.Put("k3", 103)
	want[3] = 103

	got := chain.Drain(m.Iterator())
	assert.Len(t, got, m.Size())
	sort.Ints(got)
	sort.Ints(want)
	assert.Equal(t, want, got)

	it := m.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		assert.NoError(t, err)
	}
	_, err := it.Next()
	assert.ErrorIs(t, err, chain.ErrExhausted)
}

func TestIteratorBucketMajor(t *testing.T) {
	m := New[string]()
	// "a" and "c" go to bucket 1, "Aa" and "BB" to bucket 0
	m.Put("a", "a")
	m.Put("Aa", "Aa")
	m.Put("c", "c")
	m.Put("BB", "BB")
	assert.Equal(t, []string{"Aa", "BB", "a", "c"}, chain.Drain(m.Iterator()))

	sl, err := iterator.ToSlice(m.All())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Aa", "BB", "a", "c"}, sl)

	var keys []string
	m.Iter(func(key string, v string) bool {
		keys = append(keys, key)
		return len(keys) < 3
	})
	assert.Equal(t, []string{"Aa", "BB", "a"}, keys)
}

func TestEmptyIterator(t *testing.T) {
	it := New[int]().Iterator()
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, chain.ErrExhausted)
}
