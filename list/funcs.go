package list

import (
	"cmp"
	"slices"
)

// This file contains package-level generic functions for operations that
// change the element type of a List, or that need a constraint on T that
// List[T any] cannot express on its methods.
//
// They compose with method chains:
//
//	total := list.Foldl(
//	    list.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    func(n, acc int) int { return acc + n },
//	    0,
//	) // → 6

// Map applies fn to every element and returns a new List[U] of the same
// length and order.
//
//	names := list.Map(users, func(u User) string { return u.Name })
func Map[T, U any](l List[T], fn func(T) U) List[U] {
	out := make([]U, len(l.items))
	for i, item := range l.items {
		out[i] = fn(item)
	}
	return List[U]{items: out}
}

// TryMap is [Map] for functions that can fail. It stops at the first error
// and returns it unchanged. A nil fn yields [ErrInvalidArgument].
//
//	ports, err := list.TryMap(fields, strconv.Atoi)
func TryMap[T, U any](l List[T], fn func(T) (U, error)) (List[U], error) {
	if fn == nil {
		return List[U]{}, ErrInvalidArgument
	}
	out := make([]U, len(l.items))
	for i, item := range l.items {
		v, err := fn(item)
		if err != nil {
			return List[U]{}, err
		}
		out[i] = v
	}
	return List[U]{items: out}, nil
}

// FlatMap applies fn to every element and concatenates the resulting lists.
func FlatMap[T, U any](l List[T], fn func(T) List[U]) List[U] {
	out := make([]U, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, fn(item).items...)
	}
	return List[U]{items: out}
}

// Foldl reduces l from the left: fn is applied to the first element and
// initial, then to the second element and that result, and so on.
//
//	list.Foldl(list.New(1, 2, 3), func(n int, acc string) string {
//	    return acc + strconv.Itoa(n)
//	}, "") // → "123"
func Foldl[T, A any](l List[T], fn func(T, A) A, initial A) A {
	acc := initial
	for _, item := range l.items {
		acc = fn(item, acc)
	}
	return acc
}

// TryFoldl is [Foldl] for folders that can fail. It stops at the first error
// and returns it unchanged, together with the zero value of A. A nil fn
// yields [ErrInvalidArgument].
func TryFoldl[T, A any](l List[T], fn func(T, A) (A, error), initial A) (A, error) {
	var zero A
	if fn == nil {
		return zero, ErrInvalidArgument
	}
	acc := initial
	for _, item := range l.items {
		next, err := fn(item, acc)
		if err != nil {
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

// Foldr reduces l from the right: fn is applied to the last element and
// initial first, then proceeds towards the front.
//
//	list.Foldr(list.New(1, 2, 3), func(n int, acc string) string {
//	    return acc + strconv.Itoa(n)
//	}, "") // → "321"
func Foldr[T, A any](l List[T], fn func(T, A) A, initial A) A {
	acc := initial
	for i := len(l.items) - 1; i >= 0; i-- {
		acc = fn(l.items[i], acc)
	}
	return acc
}

// Sort returns a new list with the elements in ascending natural order.
// The sort is stable; l is not modified.
func Sort[T cmp.Ordered](l List[T]) List[T] {
	return l.SortWith(cmp.Compare[T])
}

// SortBy returns a new list ordered ascending by the key extracted with key.
// Elements with equal keys keep their relative order.
//
//	byAge := list.SortBy(people, func(p Person) int { return p.Age })
func SortBy[T any, K cmp.Ordered](l List[T], key func(T) K) List[T] {
	return l.SortWith(func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// Equal reports whether a and b have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b List[T]) bool {
	return slices.Equal(a.items, b.items)
}
