package immutable

import (
	"iter"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/goccy/go-json"
)

// Set is an unordered read-only collection without duplicates. The zero
// value is the empty set.
//
// The backing golang-set is never written after construction, so the
// thread-unsafe variant is safe for concurrent readers.
type Set[E comparable] struct {
	backing mapset.Set
}

// SetOf builds a set from items, dropping duplicates.
func SetOf[E comparable](items ...E) Set[E] {
	if len(items) == 0 {
		return Set[E]{}
	}
	backing := mapset.NewThreadUnsafeSet()
	for _, v := range items {
		backing.Add(v)
	}
	return Set[E]{backing: backing}
}

func (s Set[E]) Len() int {
	if s.backing == nil {
		return 0
	}
	return s.backing.Cardinality()
}

func (s Set[E]) IsEmpty() bool {
	return s.Len() == 0
}

func (s Set[E]) Contains(v E) bool {
	if s.backing == nil {
		return false
	}
	return s.backing.Contains(v)
}

func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the elements in no particular order.
func (s Set[E]) ToSlice() []E {
	if s.backing == nil {
		return []E{}
	}
	raw := s.backing.ToSlice()
	out := make([]E, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.(E))
	}
	return out
}

func (s Set[E]) Equal(other Set[E]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.ToSlice() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s Set[E]) String() string {
	return "{" + strings.Join(renderSorted(s.ToSlice()), " ") + "}"
}

// MarshalJSON encodes the set as an array sorted by each element's text form.
func (s Set[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(sortedByText(s.ToSlice()))
}
