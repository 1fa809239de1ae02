package dom

import "errors"

// Sentinel errors returned by the arena and the tree builder.
var (
	// ErrInvalidParent is returned when an insertion names a parent id
	// that is not a live node.
	ErrInvalidParent = errors.New("parent is not a live node")

	// ErrNodeNotFound is returned on indexed access to a tombstoned or
	// out-of-range id.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidUTF8 is returned when text bytes do not decode as UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)
