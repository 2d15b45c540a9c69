package swap

import "github.com/pkg/errors"

// Decode failures form a small closed taxonomy. On chain every one of them
// maps to a blanket "invalid instruction data" rejection; off chain callers
// can tell them apart with errors.Is.
var (
	// ErrMissingDiscriminant is returned when instruction data is empty.
	ErrMissingDiscriminant = errors.New("instruction data missing discriminant byte")

	// ErrUnknownDiscriminant is returned for a discriminant outside the
	// defined instruction set.
	ErrUnknownDiscriminant = errors.New("unknown instruction discriminant")

	// ErrTruncatedInput is returned when a fixed-width field runs past the
	// end of the buffer.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMalformedPayload is returned when a fixed-arity payload has the
	// wrong total length.
	ErrMalformedPayload = errors.New("malformed instruction payload")

	// ErrBufferTooSmall is returned when a state buffer is shorter than the
	// record's fixed length.
	ErrBufferTooSmall = errors.New("state buffer too small")

	// ErrInvalidFlagByte is returned when a boolean byte holds a value other
	// than 0 or 1.
	ErrInvalidFlagByte = errors.New("invalid boolean flag byte")

	// ErrUnsupportedVersion is returned when a versioned pool buffer carries
	// a version byte this code does not know how to read.
	ErrUnsupportedVersion = errors.New("unsupported pool state version")

	// ErrUnknownCurveType is returned when a curve selector byte is outside
	// the defined curve set.
	ErrUnknownCurveType = errors.New("unknown curve type")
)
