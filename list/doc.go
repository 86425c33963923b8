// Package list provides List, a generic immutable ordered sequence with a
// functional combinator API (map, filter, fold, sort, take, drop).
//
// # Overview
//
//	result := list.New(4, 1, 3, 2).
//	    Filter(func(n int) bool { return n > 1 }).
//	    SortWith(cmp.Compare[int]).
//	    Take(2) // → List(2, 3)
//
// # Immutability
//
// A List owns its backing slice. Constructors copy their input, [List.ToSlice]
// returns a copy, and every transformation returns a new List, leaving the
// receiver unchanged. List values can therefore be shared between goroutines
// without locking. The zero value is the empty list.
//
// # Option-typed accessors
//
// Structural accessors answer with an [option.Option] instead of a zero value
// and a flag:
//
//	list.New(1, 2).Head() // → Some(1)
//	list.New(1, 2).Tail() // → Some(List(2))
//	list.New(1).Tail()    // → Nothing
//
// Tail is Nothing for both the empty and the one-element list: a list only
// has a tail when at least one element follows the head.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or that need a constrained
// element type, are package-level functions: [Map], [FlatMap], [Foldl],
// [Foldr], [Sort], [SortBy] and [Equal].
//
// # Callback failures
//
// Panics raised by caller-supplied functions are never recovered. For
// callbacks that report failure through an error, use [TryMap], [TryFoldl]
// and [List.TryFilter]; they stop at the first error and return it
// unchanged.
package list
