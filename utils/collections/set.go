package collections

// Set is an unordered collection of unique values.
//
// Binary operations never modify their operands. A nil operand makes
// Union, Intersect and Difference fail with ErrNilSet and Subset report false.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
	Union(other Set[V]) (Set[V], error)
	Intersect(other Set[V]) (Set[V], error)
	Subset(other Set[V]) bool
	Difference(other Set[V]) (Set[V], error)
	String() string
}

type EqualsFunc[V any] func(a, b V) bool

func checkOperand[V any](op string, other Set[V]) error {
	if other == nil {
		warn(op, nil, "there is no argument or undefined set")
		return ErrNilSet
	}
	return nil
}

// union, intersect and difference fill dst, which must be empty and of the
// same kind as s.

func union[V any](dst, s, other Set[V]) Set[V] {
	for _, v := range s.Entries() {
		_ = dst.Add(v)
	}
	for _, v := range other.Entries() {
		if !dst.Contains(v) {
			_ = dst.Add(v)
		}
	}
	return dst
}

func intersect[V any](dst, s, other Set[V]) Set[V] {
	for _, v := range s.Entries() {
		if other.Contains(v) {
			_ = dst.Add(v)
		}
	}
	return dst
}

func difference[V any](dst, s, other Set[V]) Set[V] {
	for _, v := range s.Entries() {
		if !other.Contains(v) {
			_ = dst.Add(v)
		}
	}
	return dst
}

func subset[V any](s, other Set[V]) bool {
	if s.Size() > other.Size() {
		return false
	}
	for _, v := range s.Entries() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
