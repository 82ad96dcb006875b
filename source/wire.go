package source

import (
	"encoding/binary"
	"fmt"

	"github.com/opd-ai/videobridge/frame"
)

// Packed raw-frame payload layout, carried fragmented across RTP packets:
//
//	[0]    format (frame.Format as one byte)
//	[1:3]  width, little-endian
//	[3:5]  height, little-endian
//	[5:]   pixel planes, tightly packed in plane order
//
// I420 carries Y (width*height), then U and V ((width/2)*(height/2) each).
// ARGB carries a single width*height*4 plane.
const frameHeaderSize = 5

// planeSizes returns the tightly packed byte size of each plane.
func planeSizes(format frame.Format, width, height int) ([]int, error) {
	switch format {
	case frame.FormatI420:
		// 4:2:0 subsampling requires even dimensions on the wire.
		if width%2 != 0 || height%2 != 0 {
			return nil, fmt.Errorf("%w: I420 requires even dimensions, got %dx%d",
				frame.ErrInvalidDimensions, width, height)
		}
		ySize := width * height
		uvSize := (width / 2) * (height / 2)
		return []int{ySize, uvSize, uvSize}, nil
	case frame.FormatARGB:
		return []int{width * height * 4}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPayloadFormat, format)
	}
}

// EncodeFrame packs a frame view into a wire payload, dropping any stride
// padding. The view is validated before packing.
func EncodeFrame(view *frame.View) ([]byte, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}
	sizes, err := planeSizes(view.Format, view.Width, view.Height)
	if err != nil {
		return nil, err
	}

	total := frameHeaderSize
	for _, s := range sizes {
		total += s
	}
	data := make([]byte, total)
	data[0] = byte(view.Format)
	binary.LittleEndian.PutUint16(data[1:3], uint16(view.Width))
	binary.LittleEndian.PutUint16(data[3:5], uint16(view.Height))

	offset := frameHeaderSize
	for i := range sizes {
		rows, rowBytes := planeGeometry(view.Format, i, view.Width, view.Height)
		src := view.Planes[i]
		stride := view.Strides[i]
		for r := 0; r < rows; r++ {
			copy(data[offset:offset+rowBytes], src[r*stride:r*stride+rowBytes])
			offset += rowBytes
		}
	}
	return data, nil
}

// DecodeFrame parses a wire payload into a frame view. The returned view
// aliases the payload: it follows the usual borrowed-view contract and must
// be copied before the payload buffer is reused.
func DecodeFrame(data []byte) (*frame.View, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedFrame, len(data))
	}
	format := frame.Format(data[0])
	width := int(binary.LittleEndian.Uint16(data[1:3]))
	height := int(binary.LittleEndian.Uint16(data[3:5]))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", frame.ErrInvalidDimensions, width, height)
	}

	sizes, err := planeSizes(format, width, height)
	if err != nil {
		return nil, err
	}
	total := frameHeaderSize
	for _, s := range sizes {
		total += s
	}
	if len(data) < total {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncatedFrame, len(data), total)
	}

	view := &frame.View{
		Format: format,
		Width:  width,
		Height: height,
	}
	offset := frameHeaderSize
	for i, size := range sizes {
		_, rowBytes := planeGeometry(format, i, width, height)
		view.Strides[i] = rowBytes
		view.Planes[i] = data[offset : offset+size]
		offset += size
	}
	return view, nil
}

// planeGeometry returns the row count and packed row width of plane i.
func planeGeometry(format frame.Format, plane, width, height int) (rows, rowBytes int) {
	if format == frame.FormatARGB {
		return height, width * 4
	}
	if plane > 0 {
		return height / 2, width / 2
	}
	return height, width
}
