package list

import "errors"

// ErrInvalidArgument is returned by the Try* combinators when the callback
// they were given is nil.
var ErrInvalidArgument = errors.New("list: invalid argument")
