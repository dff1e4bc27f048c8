package immutable

import (
	"fmt"
	"sort"
)

// renderSorted gives sets and maps a stable text form regardless of
// iteration order.
func renderSorted[E any](items []E) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, fmt.Sprint(v))
	}
	sort.Strings(out)
	return out
}

func sortedByText[E any](items []E) []E {
	keyed := make([]struct {
		text string
		v    E
	}, 0, len(items))
	for _, v := range items {
		keyed = append(keyed, struct {
			text string
			v    E
		}{fmt.Sprint(v), v})
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].text < keyed[j].text
	})
	out := make([]E, 0, len(keyed))
	for _, k := range keyed {
		out = append(out, k.v)
	}
	return out
}
