package stack

// Stack is a last-in-first-out buffer
type Stack[V any] interface {
	Get(n int) V
	Push(V)
	Pop() (V, bool)
	Peek() (V, bool)
	Size() int
	IsEmpty() bool
}

// SimpleStack is a slice backed Stack.
// The zero value is an empty stack ready to use.
type SimpleStack[V any] []V

var _ Stack[int] = (*SimpleStack[int])(nil)

// New creates an empty stack with room for size elements
func New[V any](size int) *SimpleStack[V] {
	s := make(SimpleStack[V], 0, size)
	return &s
}

// Get returns the n-th element counted from the bottom of the stack
func (s SimpleStack[V]) Get(n int) V {
	return s[n]
}

func (s SimpleStack[V]) Size() int {
	return len(s)
}

func (s SimpleStack[V]) IsEmpty() bool {
	return len(s) == 0
}

func (s *SimpleStack[V]) Push(v V) {
	*s = append(*s, v)
}

// Pop removes the top element. The bool is false if the stack was empty.
func (s *SimpleStack[V]) Pop() (V, bool) {
	last := len(*s) - 1
	if last < 0 {
		var zero V
		return zero, false
	}
	v := (*s)[last]
	var zero V
	(*s)[last] = zero
	*s = (*s)[0:last]
	return v, true
}

func (s SimpleStack[V]) Peek() (V, bool) {
	if len(s) == 0 {
		var zero V
		return zero, false
	}
	return s[len(s)-1], true
}
