// Package logging provides the structured logger used by the Maru VM
// core. It defaults to a no-op logger so that library code never writes
// to stderr unless a caller opts in.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	mu         sync.Mutex
)

// Logger returns the package-wide logger instance. It uses a no-op
// logger unless SetLogger has been called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLogger installs a caller-provided logger. Passing nil restores the
// no-op default. Intended to be called once during VM bring-up, before
// any other package call.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	loggerOnce.Do(func() {})
}

// Fatal logs a fatal VM condition (refcount invariant violation,
// allocator exhaustion, out-of-range symbol access, lock poisoning) and
// panics. These conditions are never recoverable.
func Fatal(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
	panic(msg)
}
