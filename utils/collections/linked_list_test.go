package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T) LinkedList[any] {
	l := NewLinkedList[any]()
	require.Nil(t, l.Insert(1))
	require.Nil(t, l.Insert(2, 1))
	require.Nil(t, l.Insert(3, 2))
	return l
}

func TestLinkedListInsert(t *testing.T) {
	hook := captureLogs(t)
	l := NewLinkedList[any]()
	require.Equal(t, ErrIndexOutOfRange, l.Insert(1, 2))
	require.Equal(t, "LinkedList.Insert", hook.LastEntry().Data["op"])
	require.Nil(t, l.Insert(1))
	require.Equal(t, 1, l.Entries()[0])
	require.Nil(t, l.Insert(2, 1))
	require.Equal(t, 2, l.Entries()[1])
	require.Nil(t, l.Insert(3, 2))
	require.Equal(t, 3, l.Entries()[2])
	require.Equal(t, ErrIndexOutOfRange, l.Insert(1, 78))
	require.Equal(t, ErrIndexOutOfRange, l.Insert(1, -1))
	require.Equal(t, ErrMalformedInsert, l.Insert(1, 0, 1))
	require.Equal(t, []any{1, 2, 3}, l.Entries())
	require.Equal(t, 3, l.Size())
}

func TestLinkedListInsertShifts(t *testing.T) {
	l := NewLinkedList[string]()
	require.Nil(t, l.Insert("b"))
	require.Nil(t, l.Insert("a", 0))
	require.Nil(t, l.Insert("d", 2))
	require.Nil(t, l.Insert("c", 2))
	require.Equal(t, []string{"a", "b", "c", "d"}, l.Entries())
	require.Equal(t, "[a b c d]", l.String())
}

func TestLinkedListGet(t *testing.T) {
	l := newTestList(t)
	v, err := l.Get("pig")
	require.Equal(t, ErrValueNotExisted, err)
	require.Nil(t, v)
	v, err = l.Get(23)
	require.Equal(t, ErrValueNotExisted, err)
	require.Nil(t, v)
	for _, want := range []int{3, 2, 1} {
		v, err = l.Get(want)
		require.Nil(t, err)
		require.Equal(t, want, v)
	}
}

func TestLinkedListGetFirstMatch(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	l := NewLinkedListFunc(func(a, b Mock) bool {
		return a.A == b.A
	})
	require.Nil(t, l.Insert(Mock{A: "aa", B: 1}))
	require.Nil(t, l.Insert(Mock{A: "aa", B: 2}))
	v, err := l.Get(Mock{A: "aa"})
	require.Nil(t, err)
	require.Equal(t, 1, v.B)
	require.Nil(t, l.Remove(Mock{A: "aa"}))
	v, err = l.Get(Mock{A: "aa"})
	require.Nil(t, err)
	require.Equal(t, 2, v.B)
}

func TestLinkedListEntries(t *testing.T) {
	l := newTestList(t)
	require.Equal(t, []any{1, 2, 3}, l.Entries())
	entries := l.Entries()
	entries[0] = 42
	require.Equal(t, []any{1, 2, 3}, l.Entries())
}

func TestLinkedListRemove(t *testing.T) {
	hook := captureLogs(t)
	l := NewLinkedList[any]()
	require.Equal(t, ErrValueNotExisted, l.Remove(1))
	require.Equal(t, "LinkedList.Remove", hook.LastEntry().Data["op"])
	l = newTestList(t)
	require.Nil(t, l.Remove(1))
	require.Equal(t, []any{2, 3}, l.Entries())
	require.Nil(t, l.Remove(3))
	require.Equal(t, []any{2}, l.Entries())
	require.Equal(t, ErrValueNotExisted, l.Remove(3))
	require.Nil(t, l.Remove(2))
	require.Empty(t, l.Entries())
	require.Equal(t, 0, l.Size())
	require.Nil(t, l.Insert("x", 0))
	require.Equal(t, []any{"x"}, l.Entries())
}

func TestLinkedListUncomparable(t *testing.T) {
	_ = captureLogs(t)
	l := NewLinkedList[any]()
	a := []string{"x"}
	require.Nil(t, l.Insert(1))
	require.Nil(t, l.Insert(a))
	require.Nil(t, l.Insert(map[int]int{}, 0))
	v, err := l.Get(a)
	require.Nil(t, err)
	require.Equal(t, a, v)
	_, err = l.Get([]string{"x"})
	require.Equal(t, ErrValueNotExisted, err)
	require.Equal(t, ErrValueNotExisted, l.Remove([]string{"x"}))
	require.Nil(t, l.Remove(a))
	require.Equal(t, 2, l.Size())
}

func TestLinkedListFuncNilEquals(t *testing.T) {
	l := NewLinkedListFunc[string](nil)
	require.Nil(t, l.Insert("a"))
	v, err := l.Get("a")
	require.Nil(t, err)
	require.Equal(t, "a", v)
	require.Nil(t, l.Remove("a"))
	require.Equal(t, 0, l.Size())
}
