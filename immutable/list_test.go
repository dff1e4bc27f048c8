package immutable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestList(t *testing.T) {
	testData := map[string]struct {
		items []string
	}{
		"empty":  {items: nil},
		"single": {items: []string{"a"}},
		"many":   {items: []string{"a", "b", "a"}},
	}
	for name, v := range testData {
		t.Run(name, func(t *testing.T) {
			l := ListOf(v.items...)
			if l.Len() != len(v.items) {
				t.Fatalf("expected len %d got %d", len(v.items), l.Len())
			}
			if l.IsEmpty() != (len(v.items) == 0) {
				t.Fatalf("IsEmpty mismatch for %v", v.items)
			}
			got := make([]string, 0)
			for i, s := range l.All() {
				if s != l.At(i) {
					t.Fatalf("All and At disagree at %d", i)
				}
				got = append(got, s)
			}
			if diff := cmp.Diff(append([]string{}, v.items...), got); diff != "" {
				t.Fatalf("elements mismatch (-want +got):\n%s", diff)
			}
			if _, ok := l.Lookup(len(v.items)); ok {
				t.Fatal("lookup past the end must fail")
			}
			if _, ok := l.Lookup(-1); ok {
				t.Fatal("lookup of a negative index must fail")
			}
		})
	}
}

func TestListIsolation(t *testing.T) {
	src := []int{1, 2, 3}
	l := ListOf(src...)
	src[0] = 100
	if l.At(0) != 1 {
		t.Fatalf("list changed with its source slice, got %d", l.At(0))
	}
	out := l.ToSlice()
	out[1] = 200
	if l.At(1) != 2 {
		t.Fatalf("list changed through ToSlice, got %d", l.At(1))
	}
}

func TestListAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected At to panic past the end")
		}
	}()
	var l List[int]
	l.At(0)
}

func TestListFormatting(t *testing.T) {
	var empty List[int]
	data, err := empty.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [] got %s", data)
	}
	data, err = ListOf(1, 2).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[1,2]" {
		t.Fatalf("expected [1,2] got %s", data)
	}
	if s := ListOf("x", "y").String(); s != "[x y]" {
		t.Fatalf("expected [x y] got %s", s)
	}
}
