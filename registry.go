package videobridge

import (
	"fmt"

	"github.com/opd-ai/videobridge/frame"
	"github.com/opd-ai/videobridge/gpu"
)

// textureBinding is one complete, immutable binding of a session to its
// destination textures: one texture for packed ARGB, three (Y, U, V) for
// planar 4:2:0. Bindings hold no ownership of texture memory; they are a
// pure lookup from the session to host-owned handles.
//
// Sessions swap bindings whole through an atomic pointer, so the
// render-thread consumer always observes either the previous or the new
// complete set, never a mix.
type textureBinding struct {
	format   frame.Format
	textures []gpu.TextureDesc
}

// requiredTextureCount returns how many destination textures a format
// needs, zero for unknown formats.
func requiredTextureCount(f frame.Format) int {
	return f.PlaneCount()
}

// newTextureBinding validates a format/texture-set combination and
// snapshots the texture descriptors. A validation failure leaves whatever
// binding a session currently holds untouched.
func newTextureBinding(format frame.Format, textures []gpu.TextureDesc) (*textureBinding, error) {
	need := requiredTextureCount(format)
	if need == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
	if len(textures) != need {
		return nil, fmt.Errorf("%w: %s requires %d textures, got %d",
			ErrTextureCountMismatch, format, need, len(textures))
	}
	for i, tex := range textures {
		if tex.Texture == 0 || tex.Width <= 0 || tex.Height <= 0 {
			return nil, fmt.Errorf("%w: texture %d", gpu.ErrInvalidTexture, i)
		}
	}

	// Snapshot: the caller's slice stays host-owned and may be reused.
	snap := make([]gpu.TextureDesc, need)
	copy(snap, textures)
	return &textureBinding{format: format, textures: snap}, nil
}

// layout returns the texel layout the binding's textures are written with.
// Planar video uploads raw single-channel planes; the YUV to RGB conversion
// is the host shader's job.
func (b *textureBinding) layout() gpu.PixelLayout {
	if b.format == frame.FormatARGB {
		return gpu.LayoutBGRA8
	}
	return gpu.LayoutR8
}
