package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/videobridge/frame"
)

func TestCaptureSourceDeliversToCallback(t *testing.T) {
	src := NewCaptureSource()
	assert.True(t, src.Active())

	var got *frame.View
	src.SetFrameCallback(func(v *frame.View) { got = v })

	view := paddedI420View(16, 8, 0)
	require.NoError(t, src.DeliverFrame(view))
	assert.Same(t, view, got)
}

func TestCaptureSourceDropsWithoutCallback(t *testing.T) {
	src := NewCaptureSource()
	assert.NoError(t, src.DeliverFrame(paddedI420View(16, 8, 0)))
}

func TestCaptureSourceLastRegistrationWins(t *testing.T) {
	src := NewCaptureSource()

	first, second := 0, 0
	src.SetFrameCallback(func(v *frame.View) { first++ })
	src.SetFrameCallback(func(v *frame.View) { second++ })

	require.NoError(t, src.DeliverFrame(paddedI420View(16, 8, 0)))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestCaptureSourceUnregister(t *testing.T) {
	src := NewCaptureSource()

	calls := 0
	src.SetFrameCallback(func(v *frame.View) { calls++ })
	src.SetFrameCallback(nil)

	require.NoError(t, src.DeliverFrame(paddedI420View(16, 8, 0)))
	assert.Equal(t, 0, calls)
}

func TestCaptureSourceClose(t *testing.T) {
	src := NewCaptureSource()
	src.Close()

	assert.False(t, src.Active())
	assert.ErrorIs(t, src.DeliverFrame(paddedI420View(16, 8, 0)), ErrSourceClosed)

	// Close is idempotent.
	src.Close()
	assert.False(t, src.Active())
}

func TestNewRemoteTrackSourceNilTrack(t *testing.T) {
	_, err := NewRemoteTrackSource(nil)
	assert.ErrorIs(t, err, ErrNilTrack)
}
