package chain

import "errors"

// ErrMixinNotFound is returned when an unregistered mixin name is called.
var ErrMixinNotFound = errors.New("chain: mixin not found")
