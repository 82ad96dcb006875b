package gpu

import "errors"

// Sentinel errors for device operations.
var (
	// ErrUnknownTexture indicates a texture handle that was never
	// registered with the device.
	ErrUnknownTexture = errors.New("unknown texture handle")

	// ErrTextureMismatch indicates an upload region that does not match
	// the registered texture's dimensions or layout.
	ErrTextureMismatch = errors.New("upload region does not match texture")

	// ErrTextureExists indicates a handle registered twice.
	ErrTextureExists = errors.New("texture handle already registered")

	// ErrInvalidTexture indicates a zero handle or non-positive dimensions.
	ErrInvalidTexture = errors.New("invalid texture description")
)
