package option

// This file contains the package-level generic functions that change the
// element type of an Option. Methods cannot declare their own type
// parameters, so these cannot live on Option itself.

// Map returns Some(fn(v)) when o is Some(v), and Nothing otherwise.
// fn is never called for Nothing; a panic raised by fn reaches the caller.
//
//	n := option.Map(option.Some("go"), func(s string) int { return len(s) })
//	// → Some(2)
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return Nothing[U]()
	}
	return Some(fn(o.value))
}

// FlatMap returns fn(v) when o is Some(v), and Nothing otherwise.
//
//	port := option.FlatMap(option.FromOk(os.LookupEnv("PORT")), parsePort)
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return Nothing[U]()
	}
	return fn(o.value)
}

// Match eliminates o: it returns some(v) for Some(v) and none() for Nothing.
// Exactly one of the two functions is called.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// Equal reports whether a and b are both Nothing, or both Some with equal
// values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}
