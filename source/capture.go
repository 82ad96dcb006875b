package source

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videobridge/frame"
)

// CaptureSource is a local push source: the host's capture pipeline hands
// decoded frames to DeliverFrame from whichever thread produces them.
//
// The lock protects only the callback pointer and close flag; it is never
// held across the callback's frame copy, so delivery cannot stall capture.
type CaptureSource struct {
	mu     sync.RWMutex
	cb     FrameCallback
	closed bool
}

// NewCaptureSource creates an active local capture source.
func NewCaptureSource() *CaptureSource {
	logrus.WithFields(logrus.Fields{
		"function": "NewCaptureSource",
	}).Debug("Creating local capture source")
	return &CaptureSource{}
}

// Active implements VideoSource. A capture source stays active until
// closed.
func (s *CaptureSource) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// SetFrameCallback implements VideoSource.
func (s *CaptureSource) SetFrameCallback(cb FrameCallback) {
	s.mu.Lock()
	s.cb = cb
	s.mu.Unlock()
}

// DeliverFrame pushes one decoded frame to the registered callback. The
// view is borrowed: its planes are only guaranteed valid until DeliverFrame
// returns. Frames delivered while no callback is registered are dropped.
func (s *CaptureSource) DeliverFrame(view *frame.View) error {
	s.mu.RLock()
	cb := s.cb
	closed := s.closed
	s.mu.RUnlock()

	if closed {
		return ErrSourceClosed
	}
	if cb != nil {
		cb(view)
	}
	return nil
}

// Close deactivates the source. Subsequent DeliverFrame calls fail with
// ErrSourceClosed; Close is idempotent.
func (s *CaptureSource) Close() {
	s.mu.Lock()
	s.closed = true
	s.cb = nil
	s.mu.Unlock()
}
