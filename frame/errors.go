package frame

import "errors"

// Sentinel errors for frame validation and copying.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrUnknownFormat indicates a frame format outside the supported set.
	ErrUnknownFormat = errors.New("unknown video frame format")

	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrInvalidStride indicates a plane stride smaller than one packed row.
	ErrInvalidStride = errors.New("invalid plane stride")

	// ErrShortPlane indicates plane storage too small for the declared
	// dimensions and stride.
	ErrShortPlane = errors.New("plane buffer too small")
)
