package emf

import (
	"errors"
	"testing"
)

func TestStack(t *testing.T) {
	var s stack[int]
	if _, err := s.pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("pop() on empty stack error = %v", err)
	}
	for i := 0; i < 3; i++ {
		s.push(i)
	}
	for want := 2; want >= 0; want-- {
		got, err := s.pop()
		if err != nil || got != want {
			t.Fatalf("pop() = %d, %v, want %d", got, err, want)
		}
	}
	if s.len() != 0 {
		t.Errorf("len() = %d, want 0", s.len())
	}
}
