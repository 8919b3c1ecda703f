package selector_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/antopolskiy/cardboard-md/internal/selector"
)

func TestEmptySelector(t *testing.T) {
	s := selector.FromList[string](nil)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if _, ok := s.Selected(); ok {
		t.Error("empty selector has a selection")
	}
	if _, ok := s.Current(); ok {
		t.Error("empty selector has a current item")
	}

	// SelectFirst on empty stays unselected.
	s = s.SelectFirst()
	if _, ok := s.Selected(); ok {
		t.Error("SelectFirst on empty selector produced a selection")
	}
}

func TestFromListNoInitialSelection(t *testing.T) {
	s := selector.FromList([]string{"a", "b"})
	if _, ok := s.Selected(); ok {
		t.Error("FromList produced a selection; policy belongs to the caller")
	}
}

func TestSelectBounds(t *testing.T) {
	s := selector.FromList([]string{"a", "b", "c"})

	s, ok := s.Select(2)
	if !ok {
		t.Fatal("Select(2) rejected")
	}
	if cur, _ := s.Current(); cur != "c" {
		t.Errorf("Current = %q, want %q", cur, "c")
	}

	for _, i := range []int{-1, 3, 100} {
		if _, ok := s.Select(i); ok {
			t.Errorf("Select(%d) accepted out-of-range index", i)
		}
	}
	// Rejected selects leave the selection alone.
	if idx, _ := s.Selected(); idx != 2 {
		t.Errorf("Selected = %d after rejected Select, want 2", idx)
	}
}

func TestNextPrevWrap(t *testing.T) {
	s := selector.FromList([]string{"a", "b", "c"}).SelectFirst()

	s = s.Next().Next()
	if idx, _ := s.Selected(); idx != 2 {
		t.Errorf("Selected = %d, want 2", idx)
	}
	s = s.Next()
	if idx, _ := s.Selected(); idx != 0 {
		t.Errorf("Selected after wrap = %d, want 0", idx)
	}
	s = s.Prev()
	if idx, _ := s.Selected(); idx != 2 {
		t.Errorf("Selected after Prev wrap = %d, want 2", idx)
	}
}

func TestNextWithoutSelection(t *testing.T) {
	s := selector.FromList([]string{"a"})
	s = s.Next()
	if _, ok := s.Selected(); ok {
		t.Error("Next created a selection from nothing")
	}
}

func TestMapBoth(t *testing.T) {
	s := selector.FromList([]string{"a", "b", "c"})
	s, _ = s.Select(1)

	mapped := selector.MapBoth(s,
		func(v string) string { return strings.ToUpper(v) },
		func(v string) string { return v },
	)

	if mapped.Len() != s.Len() {
		t.Errorf("Len = %d, want %d", mapped.Len(), s.Len())
	}
	idx, ok := mapped.Selected()
	if !ok || idx != 1 {
		t.Errorf("Selected = %d,%v, want 1,true", idx, ok)
	}
	want := []string{"a", "B", "c"}
	for i, v := range mapped.Items() {
		if v != want[i] {
			t.Errorf("Items[%d] = %q, want %q", i, v, want[i])
		}
	}
}

func TestMapBothChangesType(t *testing.T) {
	s := selector.FromList([]int{10, 20, 30}).SelectFirst()
	mapped := selector.MapBoth(s,
		func(v int) string { return "sel:" + strconv.Itoa(v) },
		func(v int) string { return strconv.Itoa(v) },
	)
	want := []string{"sel:10", "20", "30"}
	for i, v := range mapped.Items() {
		if v != want[i] {
			t.Errorf("Items[%d] = %q, want %q", i, v, want[i])
		}
	}
}

func TestMapBothNoSelection(t *testing.T) {
	s := selector.FromList([]string{"a", "b"})
	mapped := selector.MapBoth(s,
		func(string) string { return "selected" },
		func(v string) string { return v },
	)
	for i, v := range mapped.Items() {
		if v == "selected" {
			t.Errorf("Items[%d] used the selected transform without a selection", i)
		}
	}
}

func TestValueSemantics(t *testing.T) {
	orig := selector.FromList([]string{"a", "b"}).SelectFirst()
	next := orig.Next()

	if idx, _ := orig.Selected(); idx != 0 {
		t.Errorf("original Selected = %d after Next on copy, want 0", idx)
	}
	if idx, _ := next.Selected(); idx != 1 {
		t.Errorf("next Selected = %d, want 1", idx)
	}
}
