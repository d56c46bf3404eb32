package stack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPushPop(t *testing.T) {
	s := New[int](2)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 1, s.Get(0))

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)

	for _, exp := range []int{3, 2, 1} {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, exp, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestPopEmpty(t *testing.T) {
	var s SimpleStack[string]
	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Size())
}
