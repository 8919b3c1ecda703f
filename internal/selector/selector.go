// Package selector provides a bounded ordered sequence with at most one
// selected position. It is a general utility: nothing in it knows about
// tasks or boards.
package selector

// none marks the absence of a selection.
const none = -1

// Selector is an ordered sequence of items with an optional selected index.
// The invariant 0 <= index < len holds whenever a selection is present; an
// empty selector never has one. The zero value is an empty selector.
//
// Selectors are values: mutating operations return a new Selector and leave
// the receiver untouched.
type Selector[T any] struct {
	items    []T
	selected int
}

// FromList builds a selector over items with no selection. Callers decide
// the initial selection policy, typically SelectFirst.
func FromList[T any](items []T) Selector[T] {
	return Selector[T]{items: items, selected: none}
}

// Len returns the number of items.
func (s Selector[T]) Len() int {
	return len(s.items)
}

// Items returns the items in order. Callers must not mutate the returned
// slice.
func (s Selector[T]) Items() []T {
	return s.items
}

// Selected returns the selected index, ok false when nothing is selected.
func (s Selector[T]) Selected() (int, bool) {
	if s.selected == none {
		return 0, false
	}
	return s.selected, true
}

// Current returns the selected item, ok false when nothing is selected.
func (s Selector[T]) Current() (T, bool) {
	if s.selected == none {
		var zero T
		return zero, false
	}
	return s.items[s.selected], true
}

// Select moves the selection to index i. Out-of-range indexes are rejected
// with ok false and an unchanged selector.
func (s Selector[T]) Select(i int) (Selector[T], bool) {
	if i < 0 || i >= len(s.items) {
		return s, false
	}
	s.selected = i
	return s, true
}

// SelectFirst selects index 0 when the selector is non-empty.
func (s Selector[T]) SelectFirst() Selector[T] {
	if len(s.items) > 0 {
		s.selected = 0
	}
	return s
}

// Next advances the selection by one, wrapping at the end. A no-op without
// a selection.
func (s Selector[T]) Next() Selector[T] {
	if s.selected == none {
		return s
	}
	s.selected = (s.selected + 1) % len(s.items)
	return s
}

// Prev moves the selection back by one, wrapping at the start. A no-op
// without a selection.
func (s Selector[T]) Prev() Selector[T] {
	if s.selected == none {
		return s
	}
	s.selected = (s.selected - 1 + len(s.items)) % len(s.items)
	return s
}

// MapBoth applies selFn to the selected item and restFn to every other
// item, preserving positions and the selection index. With no selection,
// restFn applies everywhere.
func MapBoth[T, U any](s Selector[T], selFn, restFn func(T) U) Selector[U] {
	out := make([]U, len(s.items))
	for i, item := range s.items {
		if i == s.selected {
			out[i] = selFn(item)
		} else {
			out[i] = restFn(item)
		}
	}
	return Selector[U]{items: out, selected: s.selected}
}
