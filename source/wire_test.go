package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/videobridge/frame"
)

func paddedI420View(width, height, pad int) *frame.View {
	v := &frame.View{Format: frame.FormatI420, Width: width, Height: height}
	v.Strides[0] = width + pad
	v.Strides[1] = width/2 + pad
	v.Strides[2] = width/2 + pad
	for i := 0; i < 3; i++ {
		rows := height
		if i > 0 {
			rows = height / 2
		}
		plane := make([]byte, v.Strides[i]*rows)
		for j := range plane {
			plane[j] = byte(i*80 + j)
		}
		v.Planes[i] = plane
	}
	return v
}

func TestEncodeDecodeFrameI420(t *testing.T) {
	v := paddedI420View(32, 16, 8)

	data, err := EncodeFrame(v)
	require.NoError(t, err)
	assert.Len(t, data, frameHeaderSize+32*16+2*(16*8))

	out, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, frame.FormatI420, out.Format)
	assert.Equal(t, 32, out.Width)
	assert.Equal(t, 16, out.Height)

	// Decoded planes are tightly packed; compare against the padded
	// source row by row.
	for p := 0; p < 3; p++ {
		rows, rowBytes := planeGeometry(frame.FormatI420, p, 32, 16)
		for r := 0; r < rows; r++ {
			want := v.Planes[p][r*v.Strides[p] : r*v.Strides[p]+rowBytes]
			got := out.Planes[p][r*rowBytes : (r+1)*rowBytes]
			require.Equal(t, want, got, "plane %d row %d", p, r)
		}
	}
}

func TestEncodeDecodeFrameARGB(t *testing.T) {
	v := &frame.View{Format: frame.FormatARGB, Width: 8, Height: 4}
	v.Strides[0] = 8 * 4
	v.Planes[0] = make([]byte, v.Strides[0]*4)
	for j := range v.Planes[0] {
		v.Planes[0][j] = byte(j)
	}

	data, err := EncodeFrame(v)
	require.NoError(t, err)

	out, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, frame.FormatARGB, out.Format)
	assert.Equal(t, v.Planes[0], out.Planes[0])
}

func TestDecodeFrameErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "too_short_for_header",
			data:    []byte{1, 2},
			wantErr: ErrTruncatedFrame,
		},
		{
			name:    "unknown_format",
			data:    []byte{9, 8, 0, 8, 0},
			wantErr: ErrUnknownPayloadFormat,
		},
		{
			name:    "zero_dimensions",
			data:    []byte{1, 0, 0, 8, 0},
			wantErr: frame.ErrInvalidDimensions,
		},
		{
			name:    "truncated_planes",
			data:    []byte{1, 8, 0, 8, 0, 1, 2, 3},
			wantErr: ErrTruncatedFrame,
		},
		{
			name:    "odd_i420_dimensions",
			data:    []byte{1, 7, 0, 8, 0},
			wantErr: frame.ErrInvalidDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFrame(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncodeFrameRejectsInvalidView(t *testing.T) {
	v := paddedI420View(32, 16, 0)
	v.Planes[1] = v.Planes[1][:3]
	_, err := EncodeFrame(v)
	assert.ErrorIs(t, err, frame.ErrShortPlane)
}
