package collections

import (
	"fmt"
)

// Queue is an unbounded FIFO. On an empty queue Dequeue, Head and Tail
// return the zero value of V.
type Queue[V any] interface {
	Enqueue(V)
	Dequeue() V
	Head() V
	Tail() V
	Empty() bool
	Size() int
	String() string
}

type queue[V any] struct {
	entries []V
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (q *queue[V]) Enqueue(v V) {
	q.entries = append(q.entries, v)
}

func (q *queue[V]) Dequeue() (v V) {
	if q.Empty() {
		return v
	}
	ret := q.entries[0]
	// drop the reference held by the backing array
	q.entries[0] = v
	q.entries = q.entries[1:]
	return ret
}

func (q *queue[V]) Head() (v V) {
	if q.Empty() {
		return v
	}
	return q.entries[0]
}

func (q *queue[V]) Tail() (v V) {
	n := len(q.entries)
	if n == 0 {
		return v
	}
	return q.entries[n-1]
}

func (q *queue[V]) Empty() bool {
	return len(q.entries) == 0
}

func (q *queue[V]) Size() int {
	return len(q.entries)
}

func (q queue[V]) String() string {
	return fmt.Sprint(q.entries)
}
