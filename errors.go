package textcodec

import (
	"errors"
)

// ErrLengthMismatch is returned when a WordSerializer is asked to
// deserialize a string whose length differs from its serialized width.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrMalformedInput is returned when encoded input is truncated or
// internally inconsistent.
var ErrMalformedInput = errors.New("malformed input")

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")
