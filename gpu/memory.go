package gpu

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// memoryTexture is the backing store for one registered texture.
type memoryTexture struct {
	layout   PixelLayout
	width    int
	height   int
	rowPitch int
	data     []byte
}

// MemoryDevice is the software texture sink. Textures are plain host-memory
// buffers registered by handle, with a configurable row pitch to exercise
// pitch-versus-width handling. Uploads write straight into the backing
// store, so TexturePixels exposes exactly what a GPU backend would have
// received.
//
// Registration may happen on any thread; the upload methods follow the
// Device contract and run on the render thread.
type MemoryDevice struct {
	mu          sync.RWMutex
	textures    map[uintptr]*memoryTexture
	lastFrameID uint64
	frames      uint64
}

// NewMemoryDevice creates an empty software device.
func NewMemoryDevice() *MemoryDevice {
	logrus.WithFields(logrus.Fields{
		"function": "NewMemoryDevice",
	}).Debug("Creating software render device")
	return &MemoryDevice{
		textures: make(map[uintptr]*memoryTexture),
	}
}

// RegisterTexture allocates backing storage for a host texture handle.
// rowPitch selects the byte distance between rows; zero means tightly
// packed. The pitch must be at least the packed row width.
func (d *MemoryDevice) RegisterTexture(desc TextureDesc, layout PixelLayout, rowPitch int) error {
	if desc.Texture == 0 || desc.Width <= 0 || desc.Height <= 0 {
		return ErrInvalidTexture
	}
	rowBytes := desc.Width * layout.BytesPerPixel()
	if rowBytes == 0 {
		return ErrInvalidTexture
	}
	if rowPitch == 0 {
		rowPitch = rowBytes
	}
	if rowPitch < rowBytes {
		return ErrInvalidTexture
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.textures[desc.Texture]; exists {
		return ErrTextureExists
	}
	d.textures[desc.Texture] = &memoryTexture{
		layout:   layout,
		width:    desc.Width,
		height:   desc.Height,
		rowPitch: rowPitch,
		data:     make([]byte, rowPitch*desc.Height),
	}
	return nil
}

// UnregisterTexture releases the backing storage for a handle. Unknown
// handles are ignored.
func (d *MemoryDevice) UnregisterTexture(handle uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.textures, handle)
}

// TexturePixels returns the backing storage of a registered texture along
// with its row pitch. The slice aliases live storage; callers must not
// retain it across uploads they do not control.
func (d *MemoryDevice) TexturePixels(handle uintptr) ([]byte, int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	tex, ok := d.textures[handle]
	if !ok {
		return nil, 0, ErrUnknownTexture
	}
	return tex.data, tex.rowPitch, nil
}

// BeginModifyTexture implements Device. The returned update aliases the
// texture's backing store directly, so EndModifyTexture has nothing left
// to copy.
func (d *MemoryDevice) BeginModifyTexture(target TextureDesc, desc VideoDesc) (*TextureUpdate, error) {
	d.mu.RLock()
	tex, ok := d.textures[target.Texture]
	d.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownTexture
	}
	if tex.width != desc.Width || tex.height != desc.Height || tex.layout != desc.Layout {
		logrus.WithFields(logrus.Fields{
			"function":       "MemoryDevice.BeginModifyTexture",
			"texture_width":  tex.width,
			"texture_height": tex.height,
			"texture_layout": tex.layout.String(),
			"upload_width":   desc.Width,
			"upload_height":  desc.Height,
			"upload_layout":  desc.Layout.String(),
		}).Warn("Upload region does not match registered texture")
		return nil, ErrTextureMismatch
	}
	return &TextureUpdate{Data: tex.data, RowPitch: tex.rowPitch}, nil
}

// EndModifyTexture implements Device.
func (d *MemoryDevice) EndModifyTexture(target TextureDesc, update *TextureUpdate, desc VideoDesc) error {
	if update == nil {
		return ErrTextureMismatch
	}
	d.mu.RLock()
	_, ok := d.textures[target.Texture]
	d.mu.RUnlock()
	if !ok {
		return ErrUnknownTexture
	}
	return nil
}

// ProcessEndOfFrame implements Device.
func (d *MemoryDevice) ProcessEndOfFrame(frameID uint64) {
	d.mu.Lock()
	d.lastFrameID = frameID
	d.frames++
	d.mu.Unlock()
}

// LastFrameID returns the most recent frame id passed to ProcessEndOfFrame
// and the total number of completed frames.
func (d *MemoryDevice) LastFrameID() (frameID, frames uint64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastFrameID, d.frames
}
