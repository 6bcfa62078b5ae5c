package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// listSet keeps its entries in insertion order and finds them by linear scan,
// so it works for any element type with a notion of equality.
type listSet[V any] struct {
	entries []V
	equals  EqualsFunc[V]
}

// NewListSet returns a Set comparing elements with ==, seeded with vs.
// Dynamic values that == cannot compare (slices, maps, funcs) are matched by
// reference instead.
func NewListSet[V comparable](vs ...V) Set[V] {
	return NewListSetFunc[V](nil, vs...)
}

// NewListSetFunc returns a Set comparing elements with eq, seeded with vs.
// A nil eq falls back to value equality, see NewListSet.
func NewListSetFunc[V any](eq EqualsFunc[V], vs ...V) Set[V] {
	if eq == nil {
		eq = valueEquals[V]
	}
	s := &listSet[V]{
		entries: make([]V, 0, len(vs)),
		equals:  eq,
	}
	for _, v := range vs {
		_ = s.Add(v)
	}
	return s
}

func (s *listSet[V]) index(v V) int {
	return slices.IndexFunc(s.entries, func(e V) bool {
		return s.equals(e, v)
	})
}

func (s *listSet[V]) empty() *listSet[V] {
	return &listSet[V]{
		entries: make([]V, 0),
		equals:  s.equals,
	}
}

func (s *listSet[V]) Contains(v V) bool {
	return s.index(v) >= 0
}

func (s *listSet[V]) Add(v V) error {
	if s.Contains(v) {
		warn("Set.Add", v, "value is already member of the set")
		return ErrValueExisted
	}
	s.entries = append(s.entries, v)
	return nil
}

func (s *listSet[V]) Remove(v V) error {
	i := s.index(v)
	if i < 0 {
		warn("Set.Remove", v, "cannot find value")
		return ErrValueNotExisted
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return nil
}

func (s *listSet[V]) Size() int {
	return len(s.entries)
}

func (s *listSet[V]) Entries() []V {
	return slices.Clone(s.entries)
}

func (s *listSet[V]) Union(other Set[V]) (Set[V], error) {
	if err := checkOperand("Set.Union", other); err != nil {
		return nil, err
	}
	return union[V](s.empty(), s, other), nil
}

func (s *listSet[V]) Intersect(other Set[V]) (Set[V], error) {
	if err := checkOperand("Set.Intersect", other); err != nil {
		return nil, err
	}
	return intersect[V](s.empty(), s, other), nil
}

func (s *listSet[V]) Subset(other Set[V]) bool {
	if err := checkOperand("Set.Subset", other); err != nil {
		return false
	}
	return subset[V](s, other)
}

func (s *listSet[V]) Difference(other Set[V]) (Set[V], error) {
	if err := checkOperand("Set.Difference", other); err != nil {
		return nil, err
	}
	return difference[V](s.empty(), s, other), nil
}

func (s *listSet[V]) String() string {
	return fmt.Sprint(s.entries)
}
