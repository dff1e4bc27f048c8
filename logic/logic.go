// Package logic holds the helpers shared by every business object logic
// namespace. All functions are pure and safe for concurrent use; the
// containers they return are read-only.
package logic

import "bizobj/immutable"

func EmptyList[E any]() immutable.List[E] {
	return immutable.List[E]{}
}

func EmptyMap[K comparable, V any]() immutable.Map[K, V] {
	return immutable.Map[K, V]{}
}

func EmptySet[E comparable]() immutable.Set[E] {
	return immutable.Set[E]{}
}

func SingleEntryList[E any](value E) immutable.List[E] {
	return immutable.ListOf(value)
}

func SingleEntryMap[K comparable, V any](key K, value V) immutable.Map[K, V] {
	return immutable.MapOf(key, value)
}

func SingleEntrySet[E comparable](value E) immutable.Set[E] {
	return immutable.SetOf(value)
}
