package collections

import "fmt"

type Stack[V any] interface {
	Push(V)
	Pop() V
	Peek() V
	Size() int
	String() string
}

// stack keeps its top at the head of a linked list.
type stack[V any] struct {
	list *linkedList[V]
}

func NewStack[V any]() Stack[V] {
	return &stack[V]{
		list: newLinkedList[V](nil),
	}
}

func (s *stack[V]) Push(v V) {
	s.list.insertAt(v, 0)
}

func (s *stack[V]) Pop() V {
	v, _ := s.list.removeHead()
	return v
}

func (s *stack[V]) Peek() (v V) {
	if s.list.head == nil {
		return v
	}
	return s.list.head.value
}

func (s *stack[V]) Size() int {
	return s.list.Size()
}

func (s stack[V]) String() string {
	return fmt.Sprint(s.list.Entries())
}
