package source

import "github.com/opd-ai/videobridge/frame"

// FrameCallback receives one decoded video frame. The view's plane memory
// is owned by the caller and is valid only for the duration of the call;
// implementations must copy, never retain.
type FrameCallback func(view *frame.View)

// VideoSource is a producer of decoded video frames, either a local
// capture device or a specific remote track.
type VideoSource interface {
	// Active reports whether the source currently has a live media track.
	// Sessions can only be created on active sources.
	Active() bool

	// SetFrameCallback registers the frame delivery callback. A nil
	// callback unregisters delivery. Only one callback is active at a
	// time; the last registration wins. The callback may be invoked from
	// an arbitrary media engine thread.
	SetFrameCallback(cb FrameCallback)
}
