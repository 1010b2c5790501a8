package statictree

import "errors"

var (
	// ErrUnknownKind is returned by New and ParseKind for an unregistered layout name.
	ErrUnknownKind = errors.New("statictree: unknown tree kind")
)
