package immutable

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/goccy/go-json"
)

// Map is a read-only key/value lookup. The zero value is the empty map.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// MapOf returns a map holding exactly one entry.
func MapOf[K comparable, V any](key K, value V) Map[K, V] {
	return Map[K, V]{entries: map[K]V{key: value}}
}

// MapFrom copies m.
func MapFrom[K comparable, V any](m map[K]V) Map[K, V] {
	if len(m) == 0 {
		return Map[K, V]{}
	}
	return Map[K, V]{entries: maps.Clone(m)}
}

func (m Map[K, V]) Len() int {
	return len(m.entries)
}

func (m Map[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

func (m Map[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m.entries)
}

func (m Map[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(m.entries)
}

func (m Map[K, V]) Values() iter.Seq[V] {
	return maps.Values(m.entries)
}

// ToMap returns a copy of the entries; changing it does not affect m.
func (m Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

func (m Map[K, V]) String() string {
	parts := make([]string, 0, len(m.entries))
	for k, v := range m.entries {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	}
	return "map[" + strings.Join(renderSorted(parts), " ") + "]"
}

func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	if m.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.entries)
}
