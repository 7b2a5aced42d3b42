package collections

// Set is an unordered collection of distinct values. The zero value is not
// usable; make one with NewSet.
type Set[V comparable] map[V]struct{}

func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove is a no-op for values not in the set.
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

func (set Set[V]) Contains(value V) bool {
	_, ok := set[value]
	return ok
}

func (set Set[V]) Len() int {
	return len(set)
}

// Values copies the members out in no particular order, so the set may be
// modified while ranging over the result.
func (set Set[V]) Values() []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	return values
}
