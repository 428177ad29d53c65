package obj

import "errors"

// Sentinel errors returned by object helpers.
var (
	// ErrMismatchedLengths is returned by ZipObject when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("obj: keys and values must have the same length")
)
