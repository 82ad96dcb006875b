package frame

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultPoolDepth matches the typical buffering depth of the decode to
// render pipeline: one frame in flight in the handoff slot, one being
// filled by the producer, one spare.
const DefaultPoolDepth = 3

// Pool is a fixed-depth free list of reusable frames. It bounds the memory
// the pipeline holds for frame buffering: Get falls back to allocation when
// the free list is empty, and Put discards frames beyond the configured
// depth so sustained producer pressure cannot grow the pool.
//
// Pool is safe for concurrent use by the decode and render threads; the
// lock is held only for the list manipulation, never for a copy.
type Pool struct {
	mu    sync.Mutex
	free  []*Frame
	depth int

	allocations uint64
	discards    uint64
}

// NewPool creates a pool retaining at most depth recycled frames.
// A non-positive depth selects DefaultPoolDepth.
func NewPool(depth int) *Pool {
	if depth <= 0 {
		depth = DefaultPoolDepth
	}
	logrus.WithFields(logrus.Fields{
		"function": "NewPool",
		"depth":    depth,
	}).Debug("Creating frame pool")
	return &Pool{
		free:  make([]*Frame, 0, depth),
		depth: depth,
	}
}

// Get returns a frame for the producer to fill, recycling a previously
// returned frame when one is available.
func (p *Pool) Get() *Frame {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		f := p.free[n-1]
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return f
	}
	p.allocations++
	p.mu.Unlock()
	return &Frame{}
}

// Put returns a frame to the free list. Frames beyond the pool depth are
// dropped for the garbage collector to reclaim. Put(nil) is a no-op.
func (p *Pool) Put(f *Frame) {
	if f == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) >= p.depth {
		p.discards++
		return
	}
	p.free = append(p.free, f)
}

// FreeCount returns the number of frames currently held in the free list.
func (p *Pool) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Stats returns the lifetime allocation and discard counts.
func (p *Pool) Stats() (allocations, discards uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocations, p.discards
}
