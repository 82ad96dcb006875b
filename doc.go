// Package videobridge bridges decoded WebRTC video frames into GPU
// textures consumable by a real-time rendering engine.
//
// The media engine (the external WebRTC stack) decodes frames on its own
// threads and delivers them through a video source callback. The host
// renderer (a game engine or other real-time UI) supplies opaque texture
// handles and invokes one update entry point per render tick. This package
// owns everything in between: the fixed-depth frame pool, the latest-wins
// cross-thread handoff, the per-session texture binding registry and the
// stride-aware format conversion into the host's textures.
//
// # Getting Started
//
// Create a renderer over a device for the host's graphics backend, bind a
// session to a video source, and enable video with the destination
// textures:
//
//	device := gpu.NewMemoryDevice()
//	renderer := videobridge.New(device)
//
//	session, err := renderer.CreateSession(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Destroy()
//
//	err = session.EnableVideo(frame.FormatI420, []gpu.TextureDesc{yTex, uTex, vTex})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register with the host render loop; invoked once per render tick.
//	update := renderer.VideoUpdateMethod()
//
// Frames arriving faster than the render tick are dropped latest-wins:
// memory stays bounded and the consumer always sees the most recent frame.
// Frame dimensions must match the bound textures; resolution changes
// require a new EnableVideo call.
//
// The bridge subpackage exposes the same operations as a flat, handle-based
// API with numeric result codes for foreign-function interop layers.
package videobridge
