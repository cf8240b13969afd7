package sharedbuf

import "errors"

var (
	// ErrTooLarge is the allocation-failure signal: growing a buffer past
	// what memory allows panics with this value. Write converts it into an
	// ordinary error to honor the io.Writer contract.
	ErrTooLarge = errors.New("sharedbuf: buffer too large")

	// ErrNegativeSize is panicked when a negative length is requested.
	ErrNegativeSize = errors.New("sharedbuf: negative size")
)
