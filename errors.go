package videobridge

import "errors"

// Sentinel errors for renderer and session operations.
// These errors enable reliable error classification using errors.Is(),
// and the bridge package maps them onto numeric result codes.
var (
	// ErrInvalidSource indicates a nil video source or one with no active
	// media track.
	ErrInvalidSource = errors.New("video source is nil or has no active track")

	// ErrInvalidFormat indicates an unknown or unset video format.
	ErrInvalidFormat = errors.New("invalid video format")

	// ErrTextureCountMismatch indicates a texture set whose size does not
	// match the format's plane count.
	ErrTextureCountMismatch = errors.New("texture count does not match video format")

	// ErrUseAfterDestroy indicates an operation on a destroyed session.
	ErrUseAfterDestroy = errors.New("renderer session used after destroy")

	// ErrNotInitialized indicates an operation before the renderer exists.
	ErrNotInitialized = errors.New("renderer not initialized")

	// ErrAlreadyDisposed indicates a teardown operation on an already
	// disposed object.
	ErrAlreadyDisposed = errors.New("already disposed")
)
