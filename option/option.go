package option

import (
	"fmt"
	"reflect"
)

// Option is a value of type T that is either present (Some) or absent
// (Nothing).
//
// The variant is fixed at construction. All fields are unexported, so an
// Option can only be built through [Some], [Nothing], [From], [FromPtr] or
// [FromOk], and Nothing never holds a payload. The zero value is Nothing.
//
// Option is a small value type; copy it freely. It is safe for concurrent
// reads.
type Option[T any] struct {
	value T
	ok    bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Some returns an Option holding v. A nil v is still present.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// Nothing returns the absent Option of type T.
func Nothing[T any]() Option[T] {
	return Option[T]{}
}

// From lifts a raw value: it returns Nothing when v is nil (a nil interface,
// pointer, map, slice, channel or func) and Some(v) otherwise.
//
//	option.From[error](nil).IsDefined() // → false
//	option.From(5).Get()                // → 5, nil
func From[T any](v T) Option[T] {
	if isNil(v) {
		return Nothing[T]()
	}
	return Some(v)
}

// FromPtr returns Nothing for a nil pointer and Some(*p) otherwise.
// The pointee is copied; later writes through p do not affect the Option.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Some(*p)
}

// FromOk lifts a comma-ok pair.
//
//	home := option.FromOk(os.LookupEnv("HOME"))
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return Nothing[T]()
	}
	return Some(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsDefined reports whether o is Some.
func (o Option[T]) IsDefined() bool { return o.ok }

// IsEmpty reports whether o is Nothing. It is always !IsDefined().
func (o Option[T]) IsEmpty() bool { return !o.ok }

// Get returns the held value. On Nothing it returns the zero value and
// [ErrInvalidState]; callers must check [Option.IsDefined] or use
// [Option.OrElse] when absence is expected.
func (o Option[T]) Get() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrInvalidState
	}
	return o.value, nil
}

// MustGet returns the held value and panics with [ErrInvalidState] on
// Nothing.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(ErrInvalidState)
	}
	return o.value
}

// OrElse returns the held value, or fallback when o is Nothing.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElseGet returns the held value, or the result of fn when o is Nothing.
// fn is not called for Some.
func (o Option[T]) OrElseGet(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Unwrap returns the held value and true, or the zero value and false.
func (o Option[T]) Unwrap() (T, bool) { return o.value, o.ok }

// ToPtr returns a pointer to a copy of the held value, or nil for Nothing.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// IsZero reports whether o is Nothing. encoding/json uses it to omit
// Nothing fields tagged with omitzero.
func (o Option[T]) IsZero() bool { return !o.ok }

// String returns "Some(v)" or "Nothing". It implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns o when it is Some and pred holds for its value; otherwise
// Nothing. pred is not called for Nothing.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return Nothing[T]()
}

// Or returns o when it is Some and alt otherwise.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt
}
