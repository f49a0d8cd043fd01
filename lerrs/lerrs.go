// Package lerrs defines the error kinds surfaced by the Lilliput codec.
//
// Every error the codec returns wraps one of the sentinels below via
// fmt.Errorf's %w verb, so callers can branch with errors.Is regardless of
// the contextual message attached at the call site.
package lerrs

import (
	"errors"
	"fmt"
)

var (
	// ErrIO reports a failure from the caller-supplied byte sink or source.
	ErrIO = errors.New("lilliput: io failure")

	// ErrInvalidHeader reports a header byte that does not match any known
	// type prefix, or (in strict mode) a header with nonzero reserved bits.
	ErrInvalidHeader = errors.New("lilliput: invalid header byte")

	// ErrUnexpectedEnd reports that the byte source was exhausted mid-value.
	ErrUnexpectedEnd = errors.New("lilliput: unexpected end of input")

	// ErrIntegerOverflow reports a decoded integer width over 8 bytes, or a
	// length value exceeding the decoder's max_container_len.
	ErrIntegerOverflow = errors.New("lilliput: integer or length overflow")

	// ErrDepthExceeded reports that container recursion exceeded max_depth.
	ErrDepthExceeded = errors.New("lilliput: max depth exceeded")

	// ErrInvalidUTF8 reports a string payload that failed UTF-8 validation.
	ErrInvalidUTF8 = errors.New("lilliput: invalid utf-8")

	// ErrInvalidFloat reports a float width outside the eight supported
	// widths. Unreachable via the 3-bit header field; reserved for forward
	// compatibility per spec §7.
	ErrInvalidFloat = errors.New("lilliput: invalid float width")

	// ErrInvalidBytesLength reports that a caller-supplied byte array length
	// passed to EncodeBytes is not an exact power of two.
	ErrInvalidBytesLength = errors.New("lilliput: bytes length is not a power of two")
)

// Wrap attaches context to a sentinel error kind, preserving errors.Is/As
// compatibility through %w.
func Wrap(kind error, context string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", context, kind)
	}

	return fmt.Errorf("%s: %w: %w", context, kind, cause)
}
