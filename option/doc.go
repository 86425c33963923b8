// Package option provides a generic Option type: a value that is either
// present (Some) or absent (Nothing).
//
// # Overview
//
// [Option][T] replaces ad-hoc nil pointers and comma-ok pairs when a value
// may legitimately be missing:
//
//	name := option.Some("Alice")
//	none := option.Nothing[string]()
//
//	name.OrElse("anonymous") // → "Alice"
//	none.OrElse("anonymous") // → "anonymous"
//
// An Option is always in exactly one of the two variants. The zero value is
// Nothing, and Nothing can never carry a payload. Some wrapping a nil pointer
// is still Some: absence is expressed only by choosing Nothing.
//
// # Lifting Go values
//
// Three constructors lift the usual Go encodings of absence:
//
//	option.From(err)                   // nil interface → Nothing
//	option.FromPtr(cfg.Timeout)        // nil pointer   → Nothing
//	option.FromOk(os.LookupEnv("HOME")) // comma-ok      → Nothing when !ok
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// [Map], [FlatMap] and [Match] are package-level functions:
//
//	length := option.Map(name, func(s string) int { return len(s) })
//
// # Encoding
//
// Option implements json.Marshaler/Unmarshaler and yaml.Marshaler/Unmarshaler.
// Nothing encodes as null and Some(v) encodes exactly as v would, so Option
// fields can describe optional document fields.
package option
