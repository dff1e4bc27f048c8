package logic

import (
	"strings"

	"bizobj/immutable"
	"bizobj/interfaces"
)

func DisplayStrings[T interfaces.BusinessObject](objs immutable.List[T]) immutable.List[string] {
	out := make([]string, 0, objs.Len())
	for obj := range objs.Values() {
		out = append(out, obj.ToDisplayString())
	}
	return immutable.ListOf(out...)
}

// JoinDisplay renders every object and joins the results with sep.
func JoinDisplay[T interfaces.BusinessObject](objs immutable.List[T], sep string) string {
	return strings.Join(DisplayStrings(objs).ToSlice(), sep)
}
