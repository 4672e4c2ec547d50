package internal

// OrderedSet keeps unique elements in first-insertion order.
type OrderedSet[T comparable] struct {
	items   []T
	itemMap map[T]struct{}
}

// NewOrderedSet creates an ordered set holding the given elements,
// duplicates collapsed.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		itemMap: make(map[T]struct{}, len(items)),
	}
	s.Add(items...)
	return s
}

// Add inserts the given elements, skipping any already present.
func (s *OrderedSet[T]) Add(items ...T) {
	for _, item := range items {
		if _, ok := s.itemMap[item]; ok {
			continue
		}
		s.items = append(s.items, item)
		s.itemMap[item] = struct{}{}
	}
}

// Contains reports whether item is in the set.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.itemMap[item]
	return ok
}

// Size returns the number of elements in the set.
func (s *OrderedSet[T]) Size() int {
	return len(s.items)
}

// ToSlice returns the elements in insertion order. The slice is a copy.
func (s *OrderedSet[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
