// Package source provides the video sources a renderer session binds to.
//
// A VideoSource is the boundary to the external media engine: it delivers
// "new decoded frame" notifications as borrowed frame.View values whose
// plane memory is valid only for the duration of the callback.
//
// Two variants are provided:
//
//   - CaptureSource: a local push source. The host's capture pipeline calls
//     DeliverFrame from whatever thread produces frames.
//   - RemoteTrackSource: an adapter over a pion *webrtc.TrackRemote. It
//     reads RTP on a background goroutine, reassembles packed raw-frame
//     payloads (the marker bit terminates a frame, the timestamp keys
//     reassembly), and delivers the result.
//
// Delivery never blocks on the session's render path: the registered
// callback copies the view into a pooled frame and performs an atomic slot
// swap, so a slow consumer only causes frame drops, never backpressure
// into the media engine.
package source
