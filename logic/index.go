package logic

import (
	"slices"

	"golang.org/x/exp/constraints"

	"bizobj/immutable"
	"bizobj/interfaces"
)

// IndexById maps each object to its id. When two objects share an id the
// later one wins.
func IndexById[K comparable, T interfaces.Recognizable[K]](objs immutable.List[T]) immutable.Map[K, T] {
	if objs.IsEmpty() {
		return EmptyMap[K, T]()
	}
	index := make(map[K]T, objs.Len())
	for obj := range objs.Values() {
		index[obj.Id()] = obj
	}
	return immutable.MapFrom(index)
}

func SortedKeys[K constraints.Ordered, V any](m immutable.Map[K, V]) immutable.List[K] {
	keys := slices.Collect(m.Keys())
	slices.Sort(keys)
	return immutable.ListOf(keys...)
}
