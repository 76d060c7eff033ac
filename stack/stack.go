/*
Package stack provides a LIFO adapter over a growable array.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stack

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/vector"
)

// Stack is a last-in first-out container. The top of the stack is the back of
// the underlying vector.
type Stack[T any] struct {
	cont *vector.Vector[T]
}

// New creates a stack and pushes values in order, i.e., the last value will
// be on top.
func New[T any](values ...T) *Stack[T] {
	return &Stack[T]{cont: vector.From(values...)}
}

func (s *Stack[T]) vec() *vector.Vector[T] {
	if s.cont == nil {
		s.cont = vector.New[T]()
	}
	return s.cont
}

// Clone returns an independent copy of s.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{cont: s.vec().Clone()}
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return s.vec().Len()
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.vec().IsEmpty()
}

// Top returns the most recently pushed element.
func (s *Stack[T]) Top() (T, error) {
	top, err := s.vec().Back()
	if err != nil {
		return top, fmt.Errorf("%w: top of empty stack", containers.ErrLogic)
	}
	return top, nil
}

// Push puts value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.vec().PushBack(value)
}

// Pop removes the top element. Popping an empty stack is a no-op.
func (s *Stack[T]) Pop() {
	s.vec().PopBack()
}

// PopTop removes the top element and returns it.
func (s *Stack[T]) PopTop() (T, bool) {
	top, err := s.vec().Back()
	if err != nil {
		return top, false
	}
	s.vec().PopBack()
	return top, true
}

// InsertManyFront pushes values in order.
func (s *Stack[T]) InsertManyFront(values ...T) {
	s.vec().InsertManyBack(values...)
}

// Swap exchanges the contents of s and other.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.vec().Swap(other.vec())
}
