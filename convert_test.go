package videobridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/videobridge/frame"
	"github.com/opd-ai/videobridge/gpu"
)

func TestCopyPlaneTight(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	dst := make([]byte, 6)

	require.NoError(t, copyPlane(dst, 3, src, 3, 3, 2))
	assert.Equal(t, src, dst)
}

func TestCopyPlaneStrideAndPitch(t *testing.T) {
	// Source rows padded to 4 bytes, destination rows padded to 5.
	src := []byte{
		1, 2, 3, 0xFF,
		4, 5, 6, 0xFF,
	}
	dst := make([]byte, 10)

	require.NoError(t, copyPlane(dst, 5, src, 4, 3, 2))
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 4, 5, 6, 0, 0}, dst)
}

func TestCopyPlaneShortSource(t *testing.T) {
	err := copyPlane(make([]byte, 16), 4, []byte{1, 2}, 4, 4, 2)
	assert.ErrorIs(t, err, frame.ErrShortPlane)
}

func TestCopyPlaneZeroRows(t *testing.T) {
	assert.NoError(t, copyPlane(nil, 4, nil, 4, 4, 0))
}

func TestUploadPlaneRespectsPitch(t *testing.T) {
	dev := gpu.NewMemoryDevice()
	tex := gpu.TextureDesc{Texture: 1, Width: 4, Height: 2}
	require.NoError(t, dev.RegisterTexture(tex, gpu.LayoutR8, 8))

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, uploadPlane(dev, tex, gpu.LayoutR8, src, 4))

	pixels, pitch, err := dev.TexturePixels(1)
	require.NoError(t, err)
	assert.Equal(t, 8, pitch)
	assert.Equal(t, []byte{1, 2, 3, 4}, pixels[0:4])
	assert.Equal(t, []byte{5, 6, 7, 8}, pixels[8:12])
}
