package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTextureValidation(t *testing.T) {
	tests := []struct {
		name     string
		desc     TextureDesc
		layout   PixelLayout
		rowPitch int
		wantErr  error
	}{
		{
			name:   "valid_tight",
			desc:   TextureDesc{Texture: 1, Width: 16, Height: 8},
			layout: LayoutR8,
		},
		{
			name:     "valid_padded",
			desc:     TextureDesc{Texture: 2, Width: 16, Height: 8},
			layout:   LayoutBGRA8,
			rowPitch: 256,
		},
		{
			name:    "zero_handle",
			desc:    TextureDesc{Texture: 0, Width: 16, Height: 8},
			layout:  LayoutR8,
			wantErr: ErrInvalidTexture,
		},
		{
			name:    "zero_height",
			desc:    TextureDesc{Texture: 3, Width: 16, Height: 0},
			layout:  LayoutR8,
			wantErr: ErrInvalidTexture,
		},
		{
			name:     "pitch_below_row_width",
			desc:     TextureDesc{Texture: 4, Width: 16, Height: 8},
			layout:   LayoutBGRA8,
			rowPitch: 32,
			wantErr:  ErrInvalidTexture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewMemoryDevice()
			err := d.RegisterTexture(tt.desc, tt.layout, tt.rowPitch)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRegisterTextureTwice(t *testing.T) {
	d := NewMemoryDevice()
	desc := TextureDesc{Texture: 7, Width: 4, Height: 4}
	require.NoError(t, d.RegisterTexture(desc, LayoutR8, 0))
	assert.ErrorIs(t, d.RegisterTexture(desc, LayoutR8, 0), ErrTextureExists)
}

func TestBeginModifyTexture(t *testing.T) {
	d := NewMemoryDevice()
	desc := TextureDesc{Texture: 1, Width: 8, Height: 4}
	require.NoError(t, d.RegisterTexture(desc, LayoutR8, 16))

	update, err := d.BeginModifyTexture(desc, VideoDesc{Layout: LayoutR8, Width: 8, Height: 4})
	require.NoError(t, err)
	assert.Equal(t, 16, update.RowPitch)
	assert.Len(t, update.Data, 16*4)

	// Writes through the update land in the backing store.
	update.Data[0] = 0xAB
	pixels, pitch, err := d.TexturePixels(desc.Texture)
	require.NoError(t, err)
	assert.Equal(t, 16, pitch)
	assert.Equal(t, byte(0xAB), pixels[0])

	assert.NoError(t, d.EndModifyTexture(desc, update, VideoDesc{Layout: LayoutR8, Width: 8, Height: 4}))
}

func TestBeginModifyTextureMismatch(t *testing.T) {
	d := NewMemoryDevice()
	desc := TextureDesc{Texture: 1, Width: 8, Height: 4}
	require.NoError(t, d.RegisterTexture(desc, LayoutR8, 0))

	_, err := d.BeginModifyTexture(desc, VideoDesc{Layout: LayoutR8, Width: 16, Height: 4})
	assert.ErrorIs(t, err, ErrTextureMismatch)

	_, err = d.BeginModifyTexture(desc, VideoDesc{Layout: LayoutBGRA8, Width: 8, Height: 4})
	assert.ErrorIs(t, err, ErrTextureMismatch)
}

func TestBeginModifyTextureUnknownHandle(t *testing.T) {
	d := NewMemoryDevice()
	_, err := d.BeginModifyTexture(TextureDesc{Texture: 42, Width: 8, Height: 4},
		VideoDesc{Layout: LayoutR8, Width: 8, Height: 4})
	assert.ErrorIs(t, err, ErrUnknownTexture)
}

func TestUnregisterTexture(t *testing.T) {
	d := NewMemoryDevice()
	desc := TextureDesc{Texture: 1, Width: 8, Height: 4}
	require.NoError(t, d.RegisterTexture(desc, LayoutR8, 0))
	d.UnregisterTexture(desc.Texture)

	_, _, err := d.TexturePixels(desc.Texture)
	assert.ErrorIs(t, err, ErrUnknownTexture)
}

func TestProcessEndOfFrame(t *testing.T) {
	d := NewMemoryDevice()
	d.ProcessEndOfFrame(10)
	d.ProcessEndOfFrame(11)

	frameID, frames := d.LastFrameID()
	assert.Equal(t, uint64(11), frameID)
	assert.Equal(t, uint64(2), frames)
}
