package profiling

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Lightweight timing for build hot paths: a stopwatch that reports slow
// operations, and a structured summary line emitted when a build completes.

var (
	mu            sync.RWMutex
	logger        = zap.NewNop()
	slowThreshold = 10 * time.Millisecond
)

// SetLogger installs the *zap.Logger used for slow-operation and summary
// reporting. A nil logger disables logging (the default is a no-op logger).
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// SetSlowThreshold changes the duration above which Track logs the operation.
func SetSlowThreshold(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	slowThreshold = d
}

// Track returns a stop function that measures the elapsed time under the
// given name and logs it if it exceeds the configured slow threshold.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.RLock()
		l, threshold := logger, slowThreshold
		mu.RUnlock()
		if d > threshold {
			l.Debug("slow operation", zap.String("op", name), zap.Duration("took", d))
		}
	}
}

// Summary logs a structured one-line summary for a completed build
// (e.g. spatial index construction or a repair pass).
func Summary(name string, fields ...zap.Field) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Info(name, fields...)
}
