// Package bridge exposes the videobridge renderer as a flat, handle-based
// API returning numeric result codes, the shape expected by
// foreign-function interop layers (C#, Unity plugins, other language
// bindings).
//
// Sessions are addressed by opaque uintptr handles drawn from a process
// wide table, mirroring how a shared-library binding maps native handles
// back to instances. No exceptions or panics cross this surface: every
// fallible entry point reports a Result, with zero meaning success.
//
// Typical embedding:
//
//	bridge.Initialize(device)
//	handle, res := bridge.CreateRenderer(trackSource)
//	res = bridge.EnableRemoteVideo(handle, frame.FormatI420, textures)
//	update := bridge.GetVideoUpdateMethod() // invoke once per render tick
//	...
//	bridge.DestroyRenderer(handle)
//	bridge.Shutdown()
package bridge
