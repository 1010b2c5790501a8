package dataset

import "errors"

var (
	// ErrEmptyFile is returned when a key file holds no keys.
	ErrEmptyFile = errors.New("dataset: empty key file")

	// ErrMisaligned is returned when a key file size is not a multiple of 4 bytes.
	ErrMisaligned = errors.New("dataset: file size is not a multiple of 4")

	// ErrUnsorted is returned when keys are not in ascending order.
	ErrUnsorted = errors.New("dataset: keys are not sorted")
)
