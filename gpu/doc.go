// Package gpu abstracts the host renderer's texture upload path.
//
// The videobridge core never allocates or frees texture memory. The host
// supplies opaque texture handles (TextureDesc) and a Device implementation
// for its graphics backend; the core only stages pixel data through
// BeginModifyTexture/EndModifyTexture pairs on the render thread.
//
// Backend selection is capability-set polymorphism: one Device variant per
// graphics API, chosen when the renderer is constructed, instead of
// per-format branching inside the conversion path. MemoryDevice is the
// software variant, backing textures with host memory; it doubles as the
// test harness for the upload path.
package gpu
