package bridge

import (
	"errors"
	"fmt"

	"github.com/opd-ai/videobridge"
	"github.com/opd-ai/videobridge/gpu"
)

// Result is the numeric status code returned by every fallible bridge
// entry point. Zero is success; the non-zero values identify the error
// kind. The numeric values are part of the interop contract and must stay
// stable.
type Result int32

const (
	// ResultSuccess indicates the operation completed.
	ResultSuccess Result = 0
	// ResultInvalidArgument indicates a bad format, texture count or
	// texture description.
	ResultInvalidArgument Result = 1
	// ResultInvalidHandle indicates an unknown or destroyed session
	// handle.
	ResultInvalidHandle Result = 2
	// ResultNotInitialized indicates an operation before Initialize or
	// on a source with no active track.
	ResultNotInitialized Result = 3
	// ResultAlreadyDisposed indicates teardown of an already disposed
	// bridge.
	ResultAlreadyDisposed Result = 4
	// ResultUnknownError indicates an internal failure outside the
	// taxonomy; details go to the logging sink.
	ResultUnknownError Result = 5
)

// String returns a human-readable code name.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultInvalidArgument:
		return "InvalidArgument"
	case ResultInvalidHandle:
		return "InvalidHandle"
	case ResultNotInitialized:
		return "NotInitialized"
	case ResultAlreadyDisposed:
		return "AlreadyDisposed"
	case ResultUnknownError:
		return "UnknownError"
	default:
		return fmt.Sprintf("Result(%d)", int32(r))
	}
}

// resultFromError maps the package's sentinel errors onto result codes.
func resultFromError(err error) Result {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, videobridge.ErrInvalidFormat),
		errors.Is(err, videobridge.ErrTextureCountMismatch),
		errors.Is(err, gpu.ErrInvalidTexture):
		return ResultInvalidArgument
	case errors.Is(err, videobridge.ErrUseAfterDestroy):
		return ResultInvalidHandle
	case errors.Is(err, videobridge.ErrInvalidSource),
		errors.Is(err, videobridge.ErrNotInitialized):
		return ResultNotInitialized
	case errors.Is(err, videobridge.ErrAlreadyDisposed):
		return ResultAlreadyDisposed
	default:
		return ResultUnknownError
	}
}
