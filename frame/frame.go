package frame

import (
	"fmt"
)

// Format identifies the pixel layout of a video frame.
//
// The numeric values are part of the interop surface and must stay stable.
type Format int32

const (
	// FormatNone is the zero value and is never a valid frame format.
	FormatNone Format = 0
	// FormatI420 is YUV 4:2:0 planar: Y at full resolution, U and V each
	// at half horizontal and half vertical resolution.
	FormatI420 Format = 1
	// FormatARGB is packed 32-bit-per-pixel with a single interleaved plane.
	FormatARGB Format = 2
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "None"
	case FormatI420:
		return "I420"
	case FormatARGB:
		return "ARGB"
	default:
		return fmt.Sprintf("Format(%d)", int32(f))
	}
}

// PlaneCount returns the number of pixel planes the format carries.
// Unknown formats report zero planes.
func (f Format) PlaneCount() int {
	switch f {
	case FormatI420:
		return 3
	case FormatARGB:
		return 1
	default:
		return 0
	}
}

// bytesPerPixel returns the packed pixel width of plane i in bytes.
func (f Format) bytesPerPixel() int {
	if f == FormatARGB {
		return 4
	}
	return 1
}

// planeRows returns the number of rows plane i occupies for a frame of the
// given height. Chroma planes of I420 cover half the rows.
func planeRows(f Format, plane, height int) int {
	if f == FormatI420 && plane > 0 {
		return (height + 1) / 2
	}
	return height
}

// planeRowBytes returns the packed byte width of one row of plane i for a
// frame of the given width.
func planeRowBytes(f Format, plane, width int) int {
	if f == FormatARGB {
		return width * 4
	}
	if plane > 0 {
		return (width + 1) / 2
	}
	return width
}

// View describes a decoded video frame borrowed from a media engine
// callback. The plane slices alias memory owned by the media engine and are
// valid only for the duration of the callback: they must be copied, never
// retained.
//
// For FormatI420, Planes holds Y, U, V in that order. For FormatARGB only
// Planes[0] is used.
type View struct {
	Format  Format
	Width   int
	Height  int
	Strides [3]int
	Planes  [3][]byte
}

// Validate checks that the view describes a complete, well-formed frame.
func (v *View) Validate() error {
	count := v.Format.PlaneCount()
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, v.Format)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, v.Width, v.Height)
	}
	for i := 0; i < count; i++ {
		rowBytes := planeRowBytes(v.Format, i, v.Width)
		rows := planeRows(v.Format, i, v.Height)
		if v.Strides[i] < rowBytes {
			return fmt.Errorf("%w: plane %d stride %d < row bytes %d",
				ErrInvalidStride, i, v.Strides[i], rowBytes)
		}
		need := v.Strides[i]*(rows-1) + rowBytes
		if len(v.Planes[i]) < need {
			return fmt.Errorf("%w: plane %d has %d bytes, need %d",
				ErrShortPlane, i, len(v.Planes[i]), need)
		}
	}
	return nil
}

// Frame is an owned snapshot of one decoded video frame. A Frame belongs to
// exactly one holder at a time: the decode producer fills it, ownership
// transfers through the single-slot handoff, and the render consumer
// recycles it back into the Pool after upload.
type Frame struct {
	Format  Format
	Width   int
	Height  int
	Strides [3]int
	Planes  [3][]byte
}

// CopyFrom snapshots a borrowed view into this frame, reusing existing
// plane storage where capacity allows. The source stride is preserved, so
// padding bytes are copied along with pixel data; consumers must honor
// Strides when reading planes back out.
func (f *Frame) CopyFrom(v *View) error {
	if err := v.Validate(); err != nil {
		return err
	}

	f.Format = v.Format
	f.Width = v.Width
	f.Height = v.Height
	count := v.Format.PlaneCount()
	for i := 0; i < count; i++ {
		rows := planeRows(v.Format, i, v.Height)
		rowBytes := planeRowBytes(v.Format, i, v.Width)
		size := v.Strides[i]*(rows-1) + rowBytes
		f.Strides[i] = v.Strides[i]
		f.Planes[i] = resize(f.Planes[i], size)
		copy(f.Planes[i], v.Planes[i][:size])
	}
	for i := count; i < len(f.Planes); i++ {
		f.Strides[i] = 0
		f.Planes[i] = f.Planes[i][:0]
	}
	return nil
}

// Plane returns the storage for plane i, or nil if the format does not
// carry that plane.
func (f *Frame) Plane(i int) []byte {
	if i < 0 || i >= f.Format.PlaneCount() {
		return nil
	}
	return f.Planes[i]
}

// resize returns a slice of exactly n bytes, reusing buf's backing array
// when it is large enough.
func resize(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]byte, n)
}
