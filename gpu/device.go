package gpu

import "fmt"

// PixelLayout identifies the texel layout of a destination texture.
type PixelLayout int32

const (
	// LayoutR8 is a single 8-bit channel per texel, used for the
	// individual Y, U and V planes of planar video.
	LayoutR8 PixelLayout = iota
	// LayoutBGRA8 is packed 32 bits per texel, used for ARGB video.
	LayoutBGRA8
)

// String returns a human-readable layout name.
func (l PixelLayout) String() string {
	switch l {
	case LayoutR8:
		return "R8"
	case LayoutBGRA8:
		return "BGRA8"
	default:
		return fmt.Sprintf("PixelLayout(%d)", int32(l))
	}
}

// BytesPerPixel returns the texel width in bytes, or zero for an unknown
// layout.
func (l PixelLayout) BytesPerPixel() int {
	switch l {
	case LayoutR8:
		return 1
	case LayoutBGRA8:
		return 4
	default:
		return 0
	}
}

// TextureDesc identifies one host-owned destination texture. The handle is
// opaque to the core: it is created and destroyed by the host renderer and
// only ever written through a Device.
type TextureDesc struct {
	Texture uintptr
	Width   int
	Height  int
}

// VideoDesc describes the pixel region being uploaded into a texture.
type VideoDesc struct {
	Layout PixelLayout
	Width  int
	Height int
}

// TextureUpdate is a staging region returned by BeginModifyTexture. Data is
// writable row-major pixel storage; RowPitch is the byte distance between
// consecutive rows and may exceed the packed row width.
type TextureUpdate struct {
	Data     []byte
	RowPitch int
}

// Device is the texture sink for one graphics backend. All methods are
// invoked from the host render thread only; implementations do not need to
// be safe for concurrent modification of the same texture.
type Device interface {
	// BeginModifyTexture opens a staging region for the given texture.
	BeginModifyTexture(target TextureDesc, desc VideoDesc) (*TextureUpdate, error)

	// EndModifyTexture commits a staging region previously returned by
	// BeginModifyTexture for the same target.
	EndModifyTexture(target TextureDesc, update *TextureUpdate, desc VideoDesc) error

	// ProcessEndOfFrame marks the completion of one converted video frame.
	// frameID increases monotonically across the process lifetime.
	ProcessEndOfFrame(frameID uint64)
}
