package immutable

import (
	"fmt"
	"iter"
	"strings"

	"github.com/goccy/go-json"
)

// List is an ordered read-only sequence. The zero value is the empty list.
type List[E any] struct {
	items []E
}

// ListOf copies items into a new list.
func ListOf[E any](items ...E) List[E] {
	if len(items) == 0 {
		return List[E]{}
	}
	cp := make([]E, len(items))
	copy(cp, items)
	return List[E]{items: cp}
}

func (l List[E]) Len() int {
	return len(l.items)
}

func (l List[E]) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the element at index i and panics when i is out of range.
func (l List[E]) At(i int) E {
	return l.items[i]
}

func (l List[E]) Lookup(i int) (E, bool) {
	var zero E
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

func (l List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (l List[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements; changing it does not affect l.
func (l List[E]) ToSlice() []E {
	cp := make([]E, len(l.items))
	copy(cp, l.items)
	return cp
}

func (l List[E]) String() string {
	parts := make([]string, 0, len(l.items))
	for _, v := range l.items {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (l List[E]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}
