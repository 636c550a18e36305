// Package pkg is a package that provides utilities for mixvenn.
package pkg

// Set is an insertion-ordered set of comparable keys.
//
// Membership is backed by a map, iteration follows the order in which keys
// were first added. The zero value is an empty set ready to use.
type Set[K comparable] struct {
	order []K
	index map[K]struct{}
}

// NewSet creates a set holding items in first-seen order. Duplicates are ignored.
func NewSet[K comparable](items ...K) Set[K] {
	s := Set[K]{
		order: make([]K, 0, len(items)),
		index: make(map[K]struct{}, len(items)),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts k and reports whether it was not already present.
func (s *Set[K]) Add(k K) bool {
	if s.index == nil {
		s.index = make(map[K]struct{})
	}

	if _, ok := s.index[k]; ok {
		return false
	}

	s.index[k] = struct{}{}
	s.order = append(s.order, k)

	return true
}

// Len returns the number of keys in the set.
func (s Set[K]) Len() int {
	return len(s.order)
}

// Contains reports whether k is in the set.
func (s Set[K]) Contains(k K) bool {
	_, ok := s.index[k]
	return ok
}

// Items returns a copy of the keys in insertion order.
func (s Set[K]) Items() []K {
	items := make([]K, len(s.order))
	copy(items, s.order)

	return items
}

// Union returns the keys of s followed by the keys of o that s lacks.
func (s Set[K]) Union(o Set[K]) Set[K] {
	out := NewSet(s.order...)
	for _, k := range o.order {
		out.Add(k)
	}

	return out
}

// Intersect returns the keys of s that are also in o, in the order of s.
func (s Set[K]) Intersect(o Set[K]) Set[K] {
	out := NewSet[K]()

	for _, k := range s.order {
		if o.Contains(k) {
			out.Add(k)
		}
	}

	return out
}

// Difference returns the keys of s that are not in o, in the order of s.
func (s Set[K]) Difference(o Set[K]) Set[K] {
	out := NewSet[K]()

	for _, k := range s.order {
		if !o.Contains(k) {
			out.Add(k)
		}
	}

	return out
}

// SubsetOf reports whether every key of s is in o.
func (s Set[K]) SubsetOf(o Set[K]) bool {
	if s.Len() > o.Len() {
		return false
	}

	for _, k := range s.order {
		if !o.Contains(k) {
			return false
		}
	}

	return true
}

// ProperSubsetOf reports whether s is a subset of o and smaller than it.
func (s Set[K]) ProperSubsetOf(o Set[K]) bool {
	return s.Len() < o.Len() && s.SubsetOf(o)
}

// Equal reports whether s and o hold the same keys, ignoring order.
func (s Set[K]) Equal(o Set[K]) bool {
	return s.Len() == o.Len() && s.SubsetOf(o)
}

// Disjoint reports whether s and o share no key.
func (s Set[K]) Disjoint(o Set[K]) bool {
	return s.Intersect(o).Len() == 0
}
