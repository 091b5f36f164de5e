package nbt

import (
	"errors"
	"fmt"
)

// Decode failure classes. Every failure returned by Decode wraps exactly one
// of these sentinels inside a *DecodeError; match with errors.Is.
var (
	// ErrTruncated means the input ended before a read could complete.
	ErrTruncated = errors.New("truncated input")

	// ErrInvalidTagID means a tag-kind byte outside the thirteen valid codes
	// was found where a kind was expected.
	ErrInvalidTagID = errors.New("invalid tag id")

	// ErrMalformedLength means a declared length or element count is negative
	// or otherwise unusable as a size.
	ErrMalformedLength = errors.New("malformed length")

	// ErrUnexpectedRoot means the top-level tag is not a compound.
	ErrUnexpectedRoot = errors.New("root tag is not a compound")

	// ErrDepthExceeded means the input nests containers deeper than the
	// configured limit.
	ErrDepthExceeded = errors.New("nesting depth limit exceeded")
)

// DecodeError reports a decode failure together with the byte offset at which
// the offending field starts.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("nbt: offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func errAt(offset int, err error) error {
	return &DecodeError{Offset: offset, Err: err}
}
