package logic

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bizobj/immutable"
)

type product struct {
	sku  string
	name string
}

func (p product) Id() string {
	return p.sku
}

func (p product) ToDisplayString() string {
	return fmt.Sprintf("%s (%s)", p.name, p.sku)
}

func TestDisplayStrings(t *testing.T) {
	products := immutable.ListOf(product{"A1", "Anvil"}, product{"B2", "Bolt"})
	got := DisplayStrings(products).ToSlice()
	want := []string{"Anvil (A1)", "Bolt (B2)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}
	if s := JoinDisplay(products, ", "); s != "Anvil (A1), Bolt (B2)" {
		t.Fatalf("unexpected joined display %q", s)
	}
	if s := JoinDisplay(EmptyList[product](), ", "); s != "" {
		t.Fatalf("expected empty display got %q", s)
	}
}

func TestDisplayStable(t *testing.T) {
	p := product{"A1", "Anvil"}
	if p.ToDisplayString() != p.ToDisplayString() {
		t.Fatal("display string changed between calls")
	}
}

func TestIndexById(t *testing.T) {
	testData := map[string]struct {
		products []product
		want     map[string]string
	}{
		"empty": {
			want: map[string]string{},
		},
		"distinct": {
			products: []product{{"A1", "Anvil"}, {"B2", "Bolt"}},
			want:     map[string]string{"A1": "Anvil", "B2": "Bolt"},
		},
		"later duplicate wins": {
			products: []product{{"A1", "Anvil"}, {"A1", "Axe"}},
			want:     map[string]string{"A1": "Axe"},
		},
	}
	for name, v := range testData {
		t.Run(name, func(t *testing.T) {
			index := IndexById[string](immutable.ListOf(v.products...))
			got := map[string]string{}
			for k, p := range index.All() {
				got[k] = p.name
			}
			if diff := cmp.Diff(v.want, got); diff != "" {
				t.Fatalf("index mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := immutable.MapFrom(map[int]string{3: "c", 1: "a", 2: "b"})
	got := SortedKeys(m).ToSlice()
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if SortedKeys(EmptyMap[string, int]()).Len() != 0 {
		t.Fatal("expected no keys for an empty map")
	}
}
