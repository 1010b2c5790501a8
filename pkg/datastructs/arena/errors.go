package arena

import "errors"

// ErrInvalidSize is returned when a negative slot count is requested.
var ErrInvalidSize = errors.New("arena: invalid size")
