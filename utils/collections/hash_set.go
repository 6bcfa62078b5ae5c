package collections

import "fmt"

// hashSet indexes entries by a caller supplied key. Two values with the same
// key are the same member. Entries come back in map order.
type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

// NewHashSet returns a Set keyed by f. Unlike the list backed sets, Entries
// and String return members in map order, not insertion order.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) empty() *hashSet[R, V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: s.hashFunc,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		warn("Set.Add", v, "value is already member of the set")
		return ErrValueExisted
	}
	s.entries[hash] = v
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; !ok {
		warn("Set.Remove", v, "cannot find value")
		return ErrValueNotExisted
	}
	delete(s.entries, hash)
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

func (s *hashSet[R, V]) Union(other Set[V]) (Set[V], error) {
	if err := checkOperand("Set.Union", other); err != nil {
		return nil, err
	}
	return union[V](s.empty(), s, other), nil
}

func (s *hashSet[R, V]) Intersect(other Set[V]) (Set[V], error) {
	if err := checkOperand("Set.Intersect", other); err != nil {
		return nil, err
	}
	return intersect[V](s.empty(), s, other), nil
}

func (s *hashSet[R, V]) Subset(other Set[V]) bool {
	if err := checkOperand("Set.Subset", other); err != nil {
		return false
	}
	return subset[V](s, other)
}

func (s *hashSet[R, V]) Difference(other Set[V]) (Set[V], error) {
	if err := checkOperand("Set.Difference", other); err != nil {
		return nil, err
	}
	return difference[V](s.empty(), s, other), nil
}

func (s *hashSet[R, V]) String() string {
	return fmt.Sprint(s.Entries())
}
