package category

// Set is an ordered collection of unique categories.
// Insertion order is preserved, which makes category resolution deterministic.
// Set is not safe for concurrent use.
type Set struct {
	order []Category
	seen  map[Category]struct{}
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{
		seen: make(map[Category]struct{}),
	}
}

// Add inserts a category at the end of the set.
// Returns false if the category was already present or is invalid.
func (s *Set) Add(c Category) bool {
	if !c.IsValid() {
		return false
	}
	if _, ok := s.seen[c]; ok {
		return false
	}
	s.seen[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Has returns true if the category is in the set.
func (s *Set) Has(c Category) bool {
	_, ok := s.seen[c]
	return ok
}

// Len returns the number of categories in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Values returns the categories in insertion order.
// The returned slice is a copy.
func (s *Set) Values() []Category {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]Category, len(s.order))
	copy(out, s.order)
	return out
}
