package bridge

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videobridge"
	"github.com/opd-ai/videobridge/frame"
	"github.com/opd-ai/videobridge/gpu"
	"github.com/opd-ai/videobridge/source"
)

// Global instance management for interop compatibility: handles are
// process-wide and survive as long as the session they name.
var (
	mu         sync.RWMutex
	renderer   *videobridge.Renderer
	sessions   = make(map[uintptr]*videobridge.Session)
	nextHandle uintptr = 1
)

// videoUpdateMethod is the stable per-frame entry point handed to the
// host's render callback registration. It stays valid across Initialize
// and Shutdown cycles and is a no-op while no renderer exists.
var videoUpdateMethod = func() {
	mu.RLock()
	r := renderer
	mu.RUnlock()
	if r != nil {
		r.DoVideoUpdate()
	}
}

// Initialize creates the process renderer over the given device. Calling
// it again replaces the attached device, mirroring a graphics device
// re-initialization event. The device may be nil; video updates are no-ops
// until one is attached.
func Initialize(device gpu.Device) Result {
	mu.Lock()
	defer mu.Unlock()
	if renderer == nil {
		renderer = videobridge.New(device)
	} else {
		renderer.AttachDevice(device)
	}
	logrus.WithFields(logrus.Fields{
		"function":   "Initialize",
		"has_device": device != nil,
	}).Info("Bridge initialized")
	return ResultSuccess
}

// Shutdown destroys every live session and releases the renderer.
// Shutting down an uninitialized bridge reports ResultAlreadyDisposed.
func Shutdown() Result {
	mu.Lock()
	defer mu.Unlock()
	if renderer == nil {
		return ResultAlreadyDisposed
	}
	for handle, session := range sessions {
		session.Destroy()
		delete(sessions, handle)
	}
	renderer = nil
	logrus.WithFields(logrus.Fields{
		"function": "Shutdown",
	}).Info("Bridge shut down")
	return ResultSuccess
}

// CreateRenderer binds a new session to a video source and returns its
// handle. A zero handle accompanies any non-success result.
func CreateRenderer(src source.VideoSource) (uintptr, Result) {
	mu.Lock()
	defer mu.Unlock()
	if renderer == nil {
		return 0, ResultNotInitialized
	}
	session, err := renderer.CreateSession(src)
	if err != nil {
		return 0, resultFromError(err)
	}

	handle := nextHandle
	nextHandle++
	sessions[handle] = session

	logrus.WithFields(logrus.Fields{
		"function": "CreateRenderer",
		"handle":   handle,
	}).Debug("Renderer handle created")
	return handle, ResultSuccess
}

// lookup resolves a handle under the read lock.
func lookup(handle uintptr) (*videobridge.Session, Result) {
	mu.RLock()
	defer mu.RUnlock()
	if renderer == nil {
		return nil, ResultNotInitialized
	}
	session, ok := sessions[handle]
	if !ok {
		return nil, ResultInvalidHandle
	}
	return session, ResultSuccess
}

// enableVideo is the shared implementation behind the local and remote
// enable entry points.
func enableVideo(handle uintptr, format frame.Format, textures []gpu.TextureDesc) Result {
	session, res := lookup(handle)
	if res != ResultSuccess {
		return res
	}
	return resultFromError(session.EnableVideo(format, textures))
}

// disableVideo is the shared implementation behind the local and remote
// disable entry points.
func disableVideo(handle uintptr) Result {
	session, res := lookup(handle)
	if res != ResultSuccess {
		return res
	}
	return resultFromError(session.DisableVideo())
}

// EnableRemoteVideo arms frame delivery from a remote track session into
// the given textures. FormatARGB takes exactly one texture, FormatI420
// exactly three (Y, U, V). A failed enable leaves any previous binding in
// effect.
func EnableRemoteVideo(handle uintptr, format frame.Format, textures []gpu.TextureDesc) Result {
	return enableVideo(handle, format, textures)
}

// EnableLocalVideo is EnableRemoteVideo for sessions bound to a local
// capture source; the direction lives in the session's source.
func EnableLocalVideo(handle uintptr, format frame.Format, textures []gpu.TextureDesc) Result {
	return enableVideo(handle, format, textures)
}

// DisableRemoteVideo unregisters delivery and releases texture references.
// Idempotent; safe on a session that was never enabled.
func DisableRemoteVideo(handle uintptr) Result {
	return disableVideo(handle)
}

// DisableLocalVideo is DisableRemoteVideo for local capture sessions.
func DisableLocalVideo(handle uintptr) Result {
	return disableVideo(handle)
}

// DestroyRenderer tears down a session. Teardown itself cannot fail; a
// stale or unknown handle reports ResultInvalidHandle.
func DestroyRenderer(handle uintptr) Result {
	mu.Lock()
	defer mu.Unlock()
	if renderer == nil {
		return ResultNotInitialized
	}
	session, ok := sessions[handle]
	if !ok {
		return ResultInvalidHandle
	}
	session.Destroy()
	delete(sessions, handle)
	return ResultSuccess
}

// GetVideoUpdateMethod returns the stable function the host render loop
// invokes once per frame tick. Safe to call at any time, including before
// Initialize; the returned function never changes.
func GetVideoUpdateMethod() func() {
	return videoUpdateMethod
}

// SetLoggingFunctions registers the host's process-wide logging callbacks:
// last writer wins, persists for the process lifetime until re-set.
func SetLoggingFunctions(debugFn, errorFn, warningFn videobridge.LogFunc) {
	videobridge.SetLoggingFunctions(debugFn, errorFn, warningFn)
}
