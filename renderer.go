package videobridge

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videobridge/frame"
	"github.com/opd-ai/videobridge/gpu"
	"github.com/opd-ai/videobridge/source"
)

// Renderer is the top-level coordinator: it owns the shared frame pool,
// the set of live sessions, the per-tick update queue and the attached
// render device. One Renderer serves all sessions of a process.
type Renderer struct {
	mu       sync.Mutex
	device   gpu.Device
	sessions map[*Session]struct{}
	pending  map[*Session]struct{}

	pool    *frame.Pool
	frameID atomic.Uint64

	// updateFn is assigned once at construction so VideoUpdateMethod
	// always hands out the same value, matching the host's expectation of
	// a stable per-frame entry point.
	updateFn func()
}

// Config carries construction options for a Renderer.
type Config struct {
	// Device is the texture sink for the host's graphics backend. It may
	// be nil at construction and attached later; video updates are no-ops
	// until a device is attached.
	Device gpu.Device

	// PoolDepth bounds the frame free list. Non-positive selects
	// frame.DefaultPoolDepth.
	PoolDepth int
}

// New creates a renderer bound to the given device.
func New(device gpu.Device) *Renderer {
	return NewWithConfig(Config{Device: device})
}

// NewWithConfig creates a renderer with explicit options.
func NewWithConfig(cfg Config) *Renderer {
	logrus.WithFields(logrus.Fields{
		"function":   "NewWithConfig",
		"has_device": cfg.Device != nil,
		"pool_depth": cfg.PoolDepth,
	}).Info("Creating renderer")

	r := &Renderer{
		device:   cfg.Device,
		sessions: make(map[*Session]struct{}),
		pending:  make(map[*Session]struct{}),
		pool:     frame.NewPool(cfg.PoolDepth),
	}
	r.updateFn = r.DoVideoUpdate
	return r
}

// AttachDevice installs the texture sink for the host's graphics backend,
// replacing any previous one. Mirrors the host's graphics device
// initialization event.
func (r *Renderer) AttachDevice(device gpu.Device) {
	r.mu.Lock()
	r.device = device
	r.mu.Unlock()
	logrus.WithFields(logrus.Fields{
		"function": "Renderer.AttachDevice",
	}).Info("Render device attached")
}

// DetachDevice removes the texture sink; subsequent video updates become
// no-ops. Mirrors the host's graphics device shutdown event.
func (r *Renderer) DetachDevice() {
	r.mu.Lock()
	r.device = nil
	r.mu.Unlock()
	logrus.WithFields(logrus.Fields{
		"function": "Renderer.DetachDevice",
	}).Info("Render device detached")
}

// CreateSession binds a new renderer session to a video source. The source
// must be active (have a live media track).
func (r *Renderer) CreateSession(src source.VideoSource) (*Session, error) {
	if src == nil || !src.Active() {
		logrus.WithFields(logrus.Fields{
			"function": "Renderer.CreateSession",
			"error":    ErrInvalidSource.Error(),
		}).Error("Session creation failed")
		return nil, ErrInvalidSource
	}

	s := &Session{
		renderer: r,
		src:      src,
		state:    StateCreated,
	}
	r.mu.Lock()
	r.sessions[s] = struct{}{}
	count := len(r.sessions)
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "Renderer.CreateSession",
		"sessions": count,
	}).Info("Session created")
	return s, nil
}

// SessionCount returns the number of live sessions.
func (r *Renderer) SessionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// VideoUpdateMethod returns the stable per-frame update entry point for
// the host render loop. The returned function is identical across calls,
// safe to invoke repeatedly, and a no-op when nothing is pending.
func (r *Renderer) VideoUpdateMethod() func() {
	return r.updateFn
}

// DoVideoUpdate renders the latest pending frame of every queued session.
// It is invoked once per render tick on the host render thread. Without an
// attached device it leaves the queue untouched so frames render once a
// device appears.
func (r *Renderer) DoVideoUpdate() {
	r.mu.Lock()
	dev := r.device
	if dev == nil || len(r.pending) == 0 {
		r.mu.Unlock()
		return
	}
	batch := r.pending
	r.pending = make(map[*Session]struct{}, len(batch))
	r.mu.Unlock()

	for s := range batch {
		s.renderTick(dev)
	}
}

// FrameID returns the number of frames rendered across all sessions.
func (r *Renderer) FrameID() uint64 {
	return r.frameID.Load()
}

// Shutdown destroys every live session. The renderer itself stays usable;
// hosts call this on teardown before releasing their device.
func (r *Renderer) Shutdown() {
	r.mu.Lock()
	live := make([]*Session, 0, len(r.sessions))
	for s := range r.sessions {
		live = append(live, s)
	}
	r.mu.Unlock()

	for _, s := range live {
		s.Destroy()
	}
	logrus.WithFields(logrus.Fields{
		"function": "Renderer.Shutdown",
		"sessions": len(live),
	}).Info("Renderer shut down")
}

// nextFrameID advances the end-of-frame counter.
func (r *Renderer) nextFrameID() uint64 {
	return r.frameID.Add(1)
}

// enqueue marks a session for the next video update. Called from the
// decode thread; the lock is held only for the map insert.
func (r *Renderer) enqueue(s *Session) {
	r.mu.Lock()
	if _, live := r.sessions[s]; live {
		r.pending[s] = struct{}{}
	}
	r.mu.Unlock()
}

// removeSession drops a destroyed session from the registry and queue.
func (r *Renderer) removeSession(s *Session) {
	r.mu.Lock()
	delete(r.sessions, s)
	delete(r.pending, s)
	r.mu.Unlock()
}
