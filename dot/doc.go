// Package dot reads and writes nested map[string]any documents, such as the
// result of decoding JSON or YAML into an any, using dot-separated paths.
//
// Reads answer with an [option.Option], so a missing key and a key holding
// nil are told apart:
//
//	doc := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	        "manager": nil,
//	    },
//	}
//	dot.Get(doc, "user.address.city")     // → Some(London)
//	dot.Get(doc, "user.manager")          // → Some(<nil>)
//	dot.Get(doc, "user.phone")            // → Nothing
//	dot.Lookup[string](doc, "user.name")  // → Some(Alice)
//	dot.Paths(doc)                        // → List(user.address.city, user.manager, user.name)
package dot
