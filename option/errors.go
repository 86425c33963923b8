package option

import "errors"

// ErrInvalidState is returned by [Option.Get] (and carried by the panic of
// [Option.MustGet]) when the value is read from a Nothing.
var ErrInvalidState = errors.New("option: value accessed on Nothing")
