/*
Package queue provides a FIFO adapter over a growable array.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package queue

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/vector"
)

// Queue is a first-in first-out container.
//
// New elements enter at the front of the underlying vector and leave from its
// back, so Pop is O(1) while Push shifts the buffer.
type Queue[T any] struct {
	cont *vector.Vector[T]
}

// New creates a queue and pushes values in order.
func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{cont: vector.New[T]()}
	q.InsertManyBack(values...)
	return q
}

func (q *Queue[T]) vec() *vector.Vector[T] {
	if q.cont == nil {
		q.cont = vector.New[T]()
	}
	return q.cont
}

// Clone returns an independent copy of q.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{cont: q.vec().Clone()}
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.vec().Len()
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.vec().IsEmpty()
}

// Front returns the element which has been waiting longest.
func (q *Queue[T]) Front() (T, error) {
	x, err := q.vec().Back()
	if err != nil {
		return x, fmt.Errorf("%w: front of empty queue", containers.ErrLogic)
	}
	return x, nil
}

// Back returns the most recently pushed element.
func (q *Queue[T]) Back() (T, error) {
	x, err := q.vec().Front()
	if err != nil {
		return x, fmt.Errorf("%w: back of empty queue", containers.ErrLogic)
	}
	return x, nil
}

// Push enqueues value.
func (q *Queue[T]) Push(value T) {
	q.vec().PushFront(value)
}

// Pop removes the front element. Popping an empty queue is a no-op.
func (q *Queue[T]) Pop() {
	q.vec().PopBack()
}

// InsertManyBack pushes values in order.
func (q *Queue[T]) InsertManyBack(values ...T) {
	for _, x := range values {
		q.Push(x)
	}
}

// Swap exchanges the contents of q and other.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.vec().Swap(other.vec())
}
