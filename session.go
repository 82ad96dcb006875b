package videobridge

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videobridge/frame"
	"github.com/opd-ai/videobridge/gpu"
	"github.com/opd-ai/videobridge/source"
)

// SessionState is the lifecycle state of a renderer session.
//
// The machine is Created → Enabled ⇄ Disabled → Destroyed. Re-enabling an
// enabled session is allowed and atomically swaps the texture binding.
// Destroyed is terminal.
type SessionState int32

const (
	// StateCreated is the state after CreateSession, before any Enable.
	StateCreated SessionState = iota
	// StateEnabled means a texture binding is armed and frames flow.
	StateEnabled
	// StateDisabled means delivery is unregistered and textures released.
	StateDisabled
	// StateDestroyed is terminal; any further call is a use-after-destroy.
	StateDestroyed
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateEnabled:
		return "Enabled"
	case StateDisabled:
		return "Disabled"
	case StateDestroyed:
		return "Destroyed"
	default:
		return fmt.Sprintf("SessionState(%d)", int32(s))
	}
}

// SessionStats is a snapshot of a session's delivery counters.
type SessionStats struct {
	State SessionState
	// FramesRendered counts frames converted and uploaded to textures.
	FramesRendered uint64
	// FramesDropped counts frames overwritten in the handoff slot before
	// the render thread consumed them. Drops are expected whenever the
	// producer outpaces the render tick.
	FramesDropped uint64
}

// Session coordinates one video source with one set of destination
// textures. It owns the single-slot frame handoff between the media
// engine's decode thread and the host render thread.
//
// Locking: mu guards the state machine and is held by the render tick for
// the duration of a conversion, so DisableVideo and Destroy return only
// after any in-flight texture access has finished. The decode-thread
// producer never takes mu; its only synchronization is the atomic slot
// swap and the pool's list lock.
type Session struct {
	renderer *Renderer
	src      source.VideoSource

	mu    sync.Mutex
	state SessionState

	// binding is swapped whole; the producer loads it to check arming,
	// the render tick loads it once per conversion.
	binding atomic.Pointer[textureBinding]

	// slot is the latest-wins handoff cell. The producer swaps a filled
	// frame in (recycling any unconsumed predecessor); the render tick
	// swaps it out. Single writer per side, no queue growth.
	slot atomic.Pointer[frame.Frame]

	framesRendered atomic.Uint64
	framesDropped  atomic.Uint64
}

// State returns the session's current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns a snapshot of the session's counters.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		State:          s.State(),
		FramesRendered: s.framesRendered.Load(),
		FramesDropped:  s.framesDropped.Load(),
	}
}

// EnableVideo registers the destination textures for the session's video
// and arms frame delivery. FormatARGB requires exactly one texture;
// FormatI420 requires exactly three (Y, U, V).
//
// Calling EnableVideo while already enabled atomically replaces the
// binding: the render thread sees either the old complete set or the new
// complete set, never a mixed one. On a validation failure the previous
// binding, if any, stays in effect.
func (s *Session) EnableVideo(format frame.Format, textures []gpu.TextureDesc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateDestroyed {
		return ErrUseAfterDestroy
	}

	b, err := newTextureBinding(format, textures)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Session.EnableVideo",
			"format":   format.String(),
			"textures": len(textures),
			"error":    err.Error(),
		}).Error("Texture binding validation failed")
		return err
	}

	s.binding.Store(b)
	s.state = StateEnabled
	s.src.SetFrameCallback(s.onFrame)

	logrus.WithFields(logrus.Fields{
		"function": "Session.EnableVideo",
		"format":   format.String(),
		"textures": len(b.textures),
	}).Info("Video enabled")
	return nil
}

// DisableVideo unregisters frame delivery and releases the session's
// references to the host textures (the textures themselves stay
// host-owned). It is idempotent and safe to call on a session that was
// never enabled. On return, no further render-thread access to the
// previously bound textures will occur.
func (s *Session) DisableVideo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateDestroyed {
		return ErrUseAfterDestroy
	}
	s.disableLocked()
	logrus.WithFields(logrus.Fields{
		"function": "Session.DisableVideo",
	}).Debug("Video disabled")
	return nil
}

// disableLocked tears down delivery. Callers hold s.mu.
func (s *Session) disableLocked() {
	s.src.SetFrameCallback(nil)
	s.binding.Store(nil)
	s.state = StateDisabled
	// Recycle whatever the producer left in the slot. A delivery racing
	// this drain can still deposit one last frame; the next render tick
	// or Destroy recycles it, so nothing leaks.
	if f := s.slot.Swap(nil); f != nil {
		s.renderer.pool.Put(f)
	}
}

// Destroy tears down the session and removes it from the renderer.
// Destroy never fails: internal cleanup problems are reported through the
// logging sink, not the caller, because teardown must be unconditionally
// completable. Destroy is idempotent; any other call after Destroy returns
// ErrUseAfterDestroy.
func (s *Session) Destroy() {
	s.mu.Lock()
	if s.state == StateDestroyed {
		s.mu.Unlock()
		return
	}
	s.disableLocked()
	s.state = StateDestroyed
	if f := s.slot.Swap(nil); f != nil {
		s.renderer.pool.Put(f)
	}
	s.mu.Unlock()

	s.renderer.removeSession(s)
	logrus.WithFields(logrus.Fields{
		"function": "Session.Destroy",
	}).Info("Session destroyed")
}

// onFrame is the producer side of the handoff. It runs on the media
// engine's decode thread at up to capture rate and must never block: the
// view is copied into a pooled frame, swapped into the slot (overwriting
// and recycling any unconsumed predecessor), and the session is queued for
// the next video update.
func (s *Session) onFrame(view *frame.View) {
	if s.binding.Load() == nil {
		return
	}

	f := s.renderer.pool.Get()
	if err := f.CopyFrom(view); err != nil {
		s.renderer.pool.Put(f)
		logrus.WithFields(logrus.Fields{
			"function": "Session.onFrame",
			"error":    err.Error(),
		}).Warn("Dropping malformed frame from source")
		return
	}

	if old := s.slot.Swap(f); old != nil {
		s.framesDropped.Add(1)
		s.renderer.pool.Put(old)
	}
	s.renderer.enqueue(s)
}

// renderTick is the consumer side of the handoff, invoked from the host
// render thread by the renderer's video update. It takes ownership of the
// latest frame if one is pending, converts it into the bound textures and
// recycles it. With nothing pending it is a no-op and the previously
// uploaded texture content remains displayed.
func (s *Session) renderTick(dev gpu.Device) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.slot.Swap(nil)
	if f == nil {
		return false
	}
	defer s.renderer.pool.Put(f)

	if s.state != StateEnabled {
		return false
	}
	b := s.binding.Load()
	if b == nil {
		return false
	}

	if f.Format != b.format {
		logrus.WithFields(logrus.Fields{
			"function":       "Session.renderTick",
			"frame_format":   f.Format.String(),
			"binding_format": b.format.String(),
		}).Warn("Frame format does not match the enabled binding")
		return false
	}

	// Resolution changes without a matching EnableVideo are undefined by
	// contract: skip the frame and keep the last uploaded content.
	primary := b.textures[0]
	if f.Width != primary.Width || f.Height != primary.Height {
		logrus.WithFields(logrus.Fields{
			"function":       "Session.renderTick",
			"frame_width":    f.Width,
			"frame_height":   f.Height,
			"texture_width":  primary.Width,
			"texture_height": primary.Height,
		}).Warn("Frame resolution changed from what the binding was initialized with")
		return false
	}

	if err := uploadFrame(dev, b, f); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Session.renderTick",
			"error":    err.Error(),
		}).Error("Texture upload failed")
		return false
	}

	dev.ProcessEndOfFrame(s.renderer.nextFrameID())
	s.framesRendered.Add(1)
	return true
}
