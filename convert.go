package videobridge

import (
	"fmt"

	"github.com/opd-ai/videobridge/frame"
	"github.com/opd-ai/videobridge/gpu"
)

// uploadFrame converts one owned frame into the binding's destination
// textures. Planar 4:2:0 writes the Y, U and V planes unmodified into three
// single-channel textures; color-space conversion is deferred to the host's
// shader stage (BT.601 matrix: R = Y + 1.402(V-128), G = Y - 0.344(U-128) -
// 0.714(V-128), B = Y + 1.772(U-128)). Packed ARGB is a direct byte-for-byte
// upload into one texture.
//
// Both the source stride and the destination row pitch are honored; rows
// are copied at the narrower of the two widths.
func uploadFrame(dev gpu.Device, b *textureBinding, f *frame.Frame) error {
	layout := b.layout()
	for i, tex := range b.textures {
		if err := uploadPlane(dev, tex, layout, f.Planes[i], f.Strides[i]); err != nil {
			return fmt.Errorf("plane %d: %w", i, err)
		}
	}
	return nil
}

// uploadPlane stages one pixel plane into a texture through the device.
func uploadPlane(dev gpu.Device, tex gpu.TextureDesc, layout gpu.PixelLayout, src []byte, srcStride int) error {
	desc := gpu.VideoDesc{Layout: layout, Width: tex.Width, Height: tex.Height}
	update, err := dev.BeginModifyTexture(tex, desc)
	if err != nil {
		return err
	}

	rowBytes := tex.Width * layout.BytesPerPixel()
	if update.RowPitch < rowBytes {
		rowBytes = update.RowPitch
	}
	if err := copyPlane(update.Data, update.RowPitch, src, srcStride, rowBytes, tex.Height); err != nil {
		return err
	}
	return dev.EndModifyTexture(tex, update, desc)
}

// copyPlane copies rows*rowBytes of pixel data between two row-major
// buffers with independent strides.
func copyPlane(dst []byte, dstPitch int, src []byte, srcStride, rowBytes, rows int) error {
	if rows <= 0 || rowBytes <= 0 {
		return nil
	}
	need := srcStride*(rows-1) + rowBytes
	if len(src) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", frame.ErrShortPlane, len(src), need)
	}
	di, si := 0, 0
	for r := 0; r < rows; r++ {
		copy(dst[di:di+rowBytes], src[si:si+rowBytes])
		di += dstPitch
		si += srcStride
	}
	return nil
}
