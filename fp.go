// Package fp gathers the option and list packages under one import for
// callers that want the short names:
//
//	import "github.com/hasbyte1/go-fp"
//
//	names := fp.NewList("ada", "alan")
//	first := names.Head() // fp.Option[string]
//
// Everything here is an alias; the documentation lives in the option and
// list packages.
package fp

import (
	"github.com/hasbyte1/go-fp/list"
	"github.com/hasbyte1/go-fp/option"
)

// Option is [option.Option].
type Option[T any] = option.Option[T]

// List is [list.List].
type List[T any] = list.List[T]

// Some is [option.Some].
func Some[T any](v T) Option[T] { return option.Some(v) }

// Nothing is [option.Nothing].
func Nothing[T any]() Option[T] { return option.Nothing[T]() }

// From is [option.From].
func From[T any](v T) Option[T] { return option.From(v) }

// NewList is [list.New].
func NewList[T any](items ...T) List[T] { return list.New(items...) }

// EmptyList is [list.Empty].
func EmptyList[T any]() List[T] { return list.Empty[T]() }
