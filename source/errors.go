package source

import "errors"

// Sentinel errors for source construction and frame delivery.
var (
	// ErrNilTrack indicates a remote source constructed without a track.
	ErrNilTrack = errors.New("remote track cannot be nil")

	// ErrNotVideoTrack indicates a remote track whose kind is not video.
	ErrNotVideoTrack = errors.New("track is not a video track")

	// ErrSourceClosed indicates delivery attempted on a closed source.
	ErrSourceClosed = errors.New("video source is closed")

	// ErrAlreadyStarted indicates Start called twice on a remote source.
	ErrAlreadyStarted = errors.New("remote source already started")

	// ErrTruncatedFrame indicates a packed frame payload shorter than its
	// header declares.
	ErrTruncatedFrame = errors.New("truncated frame payload")

	// ErrUnknownPayloadFormat indicates a packed frame payload with an
	// unrecognized format byte.
	ErrUnknownPayloadFormat = errors.New("unknown frame payload format")
)
