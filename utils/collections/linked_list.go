package collections

import (
	"fmt"
)

// LinkedList is a singly linked sequence with positional insert and
// lookup/removal by value. Lookups scan from the head and stop at the first
// match.
type LinkedList[V any] interface {
	// Insert appends v, or puts it at position when one is given.
	Insert(v V, position ...int) error
	Get(v V) (V, error)
	Remove(v V) error
	Size() int
	Entries() []V
	String() string
}

type node[V any] struct {
	value V
	next  *node[V]
}

type linkedList[V any] struct {
	head   *node[V]
	size   int
	equals EqualsFunc[V]
}

func NewLinkedList[V comparable]() LinkedList[V] {
	return newLinkedList[V](nil)
}

// NewLinkedListFunc matches values with eq, or with value equality when eq
// is nil.
func NewLinkedListFunc[V any](eq EqualsFunc[V]) LinkedList[V] {
	return newLinkedList(eq)
}

func newLinkedList[V any](eq EqualsFunc[V]) *linkedList[V] {
	if eq == nil {
		eq = valueEquals[V]
	}
	return &linkedList[V]{
		equals: eq,
	}
}

func (l *linkedList[V]) Insert(v V, position ...int) error {
	if len(position) > 1 {
		warn("LinkedList.Insert", position, "malformed insert")
		return ErrMalformedInsert
	}
	at := l.size
	if len(position) == 1 {
		at = position[0]
	}
	if at < 0 || at > l.size {
		warn("LinkedList.Insert", at, "position out of range")
		return ErrIndexOutOfRange
	}
	l.insertAt(v, at)
	return nil
}

// insertAt expects 0 <= at <= size.
func (l *linkedList[V]) insertAt(v V, at int) {
	n := &node[V]{value: v}
	if at == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.head
		for i := 1; i < at; i++ {
			prev = prev.next
		}
		n.next = prev.next
		prev.next = n
	}
	l.size++
}

// removeHead unlinks the first node, ok is false on an empty list.
func (l *linkedList[V]) removeHead() (v V, ok bool) {
	if l.head == nil {
		return v, false
	}
	v = l.head.value
	l.head = l.head.next
	l.size--
	return v, true
}

func (l *linkedList[V]) Get(v V) (V, error) {
	for n := l.head; n != nil; n = n.next {
		if l.equals(n.value, v) {
			return n.value, nil
		}
	}
	var zero V
	return zero, ErrValueNotExisted
}

func (l *linkedList[V]) Remove(v V) error {
	var prev *node[V]
	for n := l.head; n != nil; prev, n = n, n.next {
		if !l.equals(n.value, v) {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		l.size--
		return nil
	}
	warn("LinkedList.Remove", v, "cannot find value")
	return ErrValueNotExisted
}

func (l *linkedList[V]) Size() int {
	return l.size
}

func (l *linkedList[V]) Entries() []V {
	arr := make([]V, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		arr = append(arr, n.value)
	}
	return arr
}

func (l *linkedList[V]) String() string {
	return fmt.Sprint(l.Entries())
}
