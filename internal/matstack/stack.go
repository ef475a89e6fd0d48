// Package matstack provides a bounded save/restore stack of transform matrices.
package matstack

import (
	"fmt"

	"orrery/internal/mathutil"
)

// DefaultCapacity covers the deepest body tree plus the transient
// trajectory/axes saves.
const DefaultCapacity = 32

// Stack is a fixed-capacity LIFO of matrices. The write index stays in
// [0, capacity): at most capacity-1 matrices are held at once. Overflow and
// underflow are programming errors and panic.
type Stack struct {
	matrices []mathutil.Mat4
	index    int
}

// New allocates a stack. A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{matrices: make([]mathutil.Mat4, capacity)}
}

// Push saves m.
func (s *Stack) Push(m mathutil.Mat4) {
	if s.index+1 >= len(s.matrices) {
		panic(fmt.Sprintf("matstack: push beyond capacity %d", len(s.matrices)))
	}
	s.matrices[s.index] = m
	s.index++
}

// Pop returns the most recently pushed matrix.
func (s *Stack) Pop() mathutil.Mat4 {
	if s.index-1 < 0 {
		panic("matstack: pop on empty stack")
	}
	s.index--
	return s.matrices[s.index]
}

// Len returns the number of saved matrices.
func (s *Stack) Len() int { return s.index }

// Cap returns the capacity the stack was built with.
func (s *Stack) Cap() int { return len(s.matrices) }
