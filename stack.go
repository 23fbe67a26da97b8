package emf

// stack is a LIFO of saved values. The zero value is an empty stack.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

// pop removes and returns the top value. Popping an empty stack returns
// ErrStackUnderflow.
func (s *stack[T]) pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrStackUnderflow
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

func (s *stack[T]) len() int {
	return len(s.items)
}
