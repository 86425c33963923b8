package list

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-fp/option"
)

// List is an immutable, ordered, finite sequence of T.
//
// Every method that transforms the list returns a *new* List and leaves the
// receiver unchanged, so a List is safe for concurrent reads.
//
// # Creating a list
//
//	l := list.New(1, 2, 3)
//	l := list.From([]string{"a", "b", "c"})
//	l := list.Empty[int]()
//
// # Method chaining
//
//	evens := list.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse() // → List(6, 4, 2)
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return List[T]{items: dst}
}

// Empty creates an empty List of type T.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Collect creates a List from the values yielded by seq, in order.
// seq must be finite.
func Collect[T any](seq iter.Seq[T]) List[T] {
	return List[T]{items: slices.Collect(seq)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns Some(first element), or Nothing for the empty list.
func (l List[T]) Head() option.Option[T] {
	if len(l.items) == 0 {
		return option.Nothing[T]()
	}
	return option.Some(l.items[0])
}

// Tail returns Some(every element but the first) when the list has at least
// two elements. It returns Nothing for the empty list and also for a
// one-element list: there is no tail without an element after the head.
func (l List[T]) Tail() option.Option[List[T]] {
	if len(l.items) < 2 {
		return option.Nothing[List[T]]()
	}
	return option.Some(From(l.items[1:]))
}

// Last returns Some(last element), or Nothing for the empty list.
func (l List[T]) Last() option.Option[T] {
	if len(l.items) == 0 {
		return option.Nothing[T]()
	}
	return option.Some(l.items[len(l.items)-1])
}

// Get returns the element at index, or Nothing when index is out of range.
func (l List[T]) Get(index int) option.Option[T] {
	if index < 0 || index >= len(l.items) {
		return option.Nothing[T]()
	}
	return option.Some(l.items[index])
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Length returns the number of elements.
func (l List[T]) Length() int { return len(l.items) }

// ToSlice returns a copy of the elements. Writes to the returned slice do
// not affect l.
func (l List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// String returns a representation such as "List(1, 2, 3)".
// It implements [fmt.Stringer].
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("List(")
	for i, item := range l.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(')')
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Values returns an iterator over the elements in list order.
// The iterator can be ranged over any number of times, including
// concurrently; each range starts from the first element.
//
//	for n := range l.Values() { ... }
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from last to first.
func (l List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// Each calls fn for every element in order.
func (l List[T]) Each(fn func(T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Reorder
// ─────────────────────────────────────────────────────────────────────────────

// Prepend returns a new list with el as the first element.
func (l List[T]) Prepend(el T) List[T] {
	out := make([]T, len(l.items)+1)
	out[0] = el
	copy(out[1:], l.items)
	return List[T]{items: out}
}

// Append returns a new list with el as the last element.
func (l List[T]) Append(el T) List[T] {
	out := make([]T, len(l.items)+1)
	copy(out, l.items)
	out[len(l.items)] = el
	return List[T]{items: out}
}

// Concat returns a new list with the elements of other after those of l.
func (l List[T]) Concat(other List[T]) List[T] {
	out := make([]T, len(l.items)+len(other.items))
	copy(out, l.items)
	copy(out[len(l.items):], other.items)
	return List[T]{items: out}
}

// Reverse returns a new list with the elements in opposite order.
func (l List[T]) Reverse() List[T] {
	n := len(l.items)
	out := make([]T, n)
	for i, item := range l.items {
		out[n-1-i] = item
	}
	return List[T]{items: out}
}

// SortWith returns a new list ordered by cmp, which returns a negative
// number when a precedes b, a positive number when a follows b and zero
// when they are equal. The sort is stable.
func (l List[T]) SortWith(cmp func(a, b T) int) List[T] {
	out := l.ToSlice()
	slices.SortStableFunc(out, cmp)
	return List[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with the elements for which pred returns true,
// in their original order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return List[T]{items: out}
}

// TryFilter is [List.Filter] for predicates that can fail. It stops at the
// first error and returns it unchanged. A nil pred yields
// [ErrInvalidArgument].
func (l List[T]) TryFilter(pred func(T) (bool, error)) (List[T], error) {
	if pred == nil {
		return List[T]{}, ErrInvalidArgument
	}
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		keep, err := pred(item)
		if err != nil {
			return List[T]{}, err
		}
		if keep {
			out = append(out, item)
		}
	}
	return List[T]{items: out}, nil
}

// Take returns the first min(n, Length()) elements.
// n <= 0 yields the empty list.
func (l List[T]) Take(n int) List[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if n > len(l.items) {
		n = len(l.items)
	}
	return From(l.items[:n])
}

// Drop removes the last n elements and keeps the first Length()-n.
//
//	list.New(1, 2, 3).Drop(2) // → List(1)
//
// n <= 0 yields a copy of l; n >= Length() yields the empty list.
func (l List[T]) Drop(n int) List[T] {
	if n <= 0 {
		return From(l.items)
	}
	if n >= len(l.items) {
		return Empty[T]()
	}
	return From(l.items[:len(l.items)-n])
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying pred, or Nothing.
func (l List[T]) Find(pred func(T) bool) option.Option[T] {
	for _, item := range l.items {
		if pred(item) {
			return option.Some(item)
		}
	}
	return option.Nothing[T]()
}

// All reports whether every element satisfies pred. It is true for the
// empty list. pred is called for every element.
func (l List[T]) All(pred func(T) bool) bool {
	return Foldl(l, func(item T, acc bool) bool { return pred(item) && acc }, true)
}

// Any reports whether at least one element satisfies pred. It is false for
// the empty list. pred is called for every element.
func (l List[T]) Any(pred func(T) bool) bool {
	return Foldl(l, func(item T, acc bool) bool { return pred(item) || acc }, false)
}
