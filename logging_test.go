package videobridge

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// collector is a thread-safe message sink for host logging tests.
type collector struct {
	mu   sync.Mutex
	msgs []string
}

func (c *collector) fn() LogFunc {
	return func(msg string) {
		c.mu.Lock()
		c.msgs = append(c.msgs, msg)
		c.mu.Unlock()
	}
}

func (c *collector) contains(msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.msgs {
		if m == msg {
			return true
		}
	}
	return false
}

func TestSetLoggingFunctionsForwardsByLevel(t *testing.T) {
	var debug, errs, warns collector
	SetLoggingFunctions(debug.fn(), errs.fn(), warns.fn())
	defer SetLoggingFunctions(nil, nil, nil)

	logrus.Warn("logging-test-warning")
	logrus.Error("logging-test-error")

	assert.True(t, warns.contains("logging-test-warning"))
	assert.True(t, errs.contains("logging-test-error"))
	assert.False(t, debug.contains("logging-test-warning"))
	assert.False(t, debug.contains("logging-test-error"))
}

func TestSetLoggingFunctionsLastWriterWins(t *testing.T) {
	var first, second collector
	SetLoggingFunctions(nil, first.fn(), nil)
	SetLoggingFunctions(nil, second.fn(), nil)
	defer SetLoggingFunctions(nil, nil, nil)

	logrus.Error("logging-test-replaced")

	assert.False(t, first.contains("logging-test-replaced"))
	assert.True(t, second.contains("logging-test-replaced"))
}

func TestNilLoggingFunctionsAreSilent(t *testing.T) {
	SetLoggingFunctions(nil, nil, nil)

	// Must not panic with an empty registration.
	logrus.Warn("logging-test-silent")
	logrus.Error("logging-test-silent")
}
