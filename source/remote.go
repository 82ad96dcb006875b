package source

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/pion/webrtc/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RemoteTrackSource adapts a pion remote video track into a VideoSource.
// A background goroutine reads RTP from the track, reassembles packed
// raw-frame payloads and delivers each completed frame to the registered
// callback on the read goroutine.
//
// The read loop ends when the peer connection closes the track or the
// source is closed; either way the source reports inactive afterwards.
type RemoteTrackSource struct {
	track *webrtc.TrackRemote
	asm   frameAssembler

	mu      sync.RWMutex
	cb      FrameCallback
	started bool
	closed  bool

	cancel context.CancelFunc
	group  *errgroup.Group

	framesDelivered uint64
	decodeFailures  uint64
}

// NewRemoteTrackSource wraps a remote video track. The track must be a
// video track; audio tracks are rejected.
func NewRemoteTrackSource(track *webrtc.TrackRemote) (*RemoteTrackSource, error) {
	if track == nil {
		return nil, ErrNilTrack
	}
	if track.Kind() != webrtc.RTPCodecTypeVideo {
		return nil, ErrNotVideoTrack
	}
	logrus.WithFields(logrus.Fields{
		"function": "NewRemoteTrackSource",
		"track_id": track.ID(),
		"ssrc":     uint32(track.SSRC()),
	}).Info("Creating remote track source")
	return &RemoteTrackSource{track: track}, nil
}

// Start launches the RTP read loop. It returns immediately; frames are
// delivered asynchronously until the track ends or Close is called.
func (s *RemoteTrackSource) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSourceClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	s.cancel = cancel
	s.group = group
	s.started = true

	group.Go(func() error {
		return s.readLoop(ctx)
	})
	return nil
}

// readLoop reads RTP until the track ends or the context is canceled.
func (s *RemoteTrackSource) readLoop(ctx context.Context) error {
	logrus.WithFields(logrus.Fields{
		"function": "RemoteTrackSource.readLoop",
		"track_id": s.track.ID(),
	}).Debug("Remote track read loop started")

	for {
		if ctx.Err() != nil {
			return nil
		}

		pkt, _, err := s.track.ReadRTP()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				logrus.WithFields(logrus.Fields{
					"function": "RemoteTrackSource.readLoop",
					"track_id": s.track.ID(),
				}).Debug("Remote track read loop ended")
				return nil
			}
			return err
		}

		payload := s.asm.push(pkt)
		if payload == nil {
			continue
		}

		view, err := DecodeFrame(payload)
		if err != nil {
			s.mu.Lock()
			s.decodeFailures++
			s.mu.Unlock()
			logrus.WithFields(logrus.Fields{
				"function": "RemoteTrackSource.readLoop",
				"track_id": s.track.ID(),
				"error":    err.Error(),
			}).Warn("Dropping undecodable frame payload")
			continue
		}

		s.mu.RLock()
		cb := s.cb
		s.mu.RUnlock()
		if cb != nil {
			cb(view)
			s.mu.Lock()
			s.framesDelivered++
			s.mu.Unlock()
		}
	}
}

// Active implements VideoSource.
func (s *RemoteTrackSource) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// SetFrameCallback implements VideoSource.
func (s *RemoteTrackSource) SetFrameCallback(cb FrameCallback) {
	s.mu.Lock()
	s.cb = cb
	s.mu.Unlock()
}

// Stats returns delivery counters for quality diagnostics.
func (s *RemoteTrackSource) Stats() (delivered, decodeFailures uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.framesDelivered, s.decodeFailures
}

// Close stops the read loop and deactivates the source. It waits for the
// read goroutine to exit and is idempotent.
func (s *RemoteTrackSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.cb = nil
	cancel := s.cancel
	group := s.group
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if group != nil {
		return group.Wait()
	}
	return nil
}
