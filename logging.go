package videobridge

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// LogFunc is a host-supplied logging callback receiving one message.
type LogFunc func(message string)

// hostSink holds one registration of host logging callbacks.
type hostSink struct {
	debug   LogFunc
	err     LogFunc
	warning LogFunc
}

var (
	hostSinkValue atomic.Value // *hostSink
	hostHookOnce  sync.Once
)

func init() {
	// No-op sink by default: internal logging stays on logrus until the
	// host registers its functions.
	hostSinkValue.Store(&hostSink{})
}

// SetLoggingFunctions registers process-wide host logging callbacks. Every
// log line the bridge emits is forwarded to the matching callback: debug
// and informational lines to debugFn, warnings to warningFn, errors to
// errorFn. Nil functions silence their level.
//
// The registration is process-wide mutable state with last-writer-wins
// semantics: it persists for the process lifetime until re-set.
func SetLoggingFunctions(debugFn, errorFn, warningFn LogFunc) {
	hostHookOnce.Do(func() {
		logrus.AddHook(hostLogHook{})
	})
	hostSinkValue.Store(&hostSink{debug: debugFn, err: errorFn, warning: warningFn})
	logrus.WithFields(logrus.Fields{
		"function": "SetLoggingFunctions",
	}).Debug("Host logging functions registered")
}

// currentHostSink returns the active registration.
func currentHostSink() *hostSink {
	return hostSinkValue.Load().(*hostSink)
}

// hostLogHook forwards logrus entries to the registered host sink.
type hostLogHook struct{}

// Levels implements logrus.Hook.
func (hostLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. Only the plain message is forwarded; hosts
// that want structured fields configure logrus directly instead.
func (hostLogHook) Fire(entry *logrus.Entry) error {
	sink := currentHostSink()
	switch {
	case entry.Level <= logrus.ErrorLevel:
		if sink.err != nil {
			sink.err(entry.Message)
		}
	case entry.Level == logrus.WarnLevel:
		if sink.warning != nil {
			sink.warning(entry.Message)
		}
	default:
		if sink.debug != nil {
			sink.debug(entry.Message)
		}
	}
	return nil
}
