package immutable

import (
	mapset "github.com/deckarep/golang-set"
)

// Unmodifiable exposes the set as a golang-set for code written against
// that API. Add, Remove, Clear and Pop panic with a *ViolationError.
//
// The view's own binary operations accept any golang-set as their argument,
// views included. A plain golang-set cannot take the view as its argument
// because it asserts its concrete type; pass view.Clone() instead.
func (s Set[E]) Unmodifiable() mapset.Set {
	backing := s.backing
	if backing == nil {
		backing = mapset.NewThreadUnsafeSet()
	}
	return readOnlySet{Set: backing}
}

type readOnlySet struct {
	mapset.Set
}

const readOnlySetName = "immutable.Set"

func (readOnlySet) Add(interface{}) bool {
	panic(violation(readOnlySetName, "Add"))
}

func (readOnlySet) Remove(interface{}) {
	panic(violation(readOnlySetName, "Remove"))
}

func (readOnlySet) Clear() {
	panic(violation(readOnlySetName, "Clear"))
}

func (readOnlySet) Pop() interface{} {
	panic(violation(readOnlySetName, "Pop"))
}

// The binary operations below only use Contains, Cardinality and ToSlice on
// their argument, so they work whatever golang-set implementation it is.

func (r readOnlySet) Equal(other mapset.Set) bool {
	return r.Cardinality() == other.Cardinality() && r.IsSubset(other)
}

func (r readOnlySet) IsSubset(other mapset.Set) bool {
	for _, v := range r.ToSlice() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (r readOnlySet) IsProperSubset(other mapset.Set) bool {
	return r.Cardinality() < other.Cardinality() && r.IsSubset(other)
}

func (r readOnlySet) IsSuperset(other mapset.Set) bool {
	for _, v := range other.ToSlice() {
		if !r.Contains(v) {
			return false
		}
	}
	return true
}

func (r readOnlySet) IsProperSuperset(other mapset.Set) bool {
	return r.Cardinality() > other.Cardinality() && r.IsSuperset(other)
}

// Union, Intersect, Difference and SymmetricDifference return new mutable
// thread-unsafe sets; the view itself is never changed.
func (r readOnlySet) Union(other mapset.Set) mapset.Set {
	out := r.Set.Clone()
	for _, v := range other.ToSlice() {
		out.Add(v)
	}
	return out
}

func (r readOnlySet) Intersect(other mapset.Set) mapset.Set {
	out := mapset.NewThreadUnsafeSet()
	for _, v := range r.ToSlice() {
		if other.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

func (r readOnlySet) Difference(other mapset.Set) mapset.Set {
	out := mapset.NewThreadUnsafeSet()
	for _, v := range r.ToSlice() {
		if !other.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

func (r readOnlySet) SymmetricDifference(other mapset.Set) mapset.Set {
	out := r.Difference(other)
	for _, v := range other.ToSlice() {
		if !r.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

func (r readOnlySet) CartesianProduct(other mapset.Set) mapset.Set {
	operand := mapset.NewThreadUnsafeSet()
	for _, v := range other.ToSlice() {
		operand.Add(v)
	}
	return r.Set.CartesianProduct(operand)
}
