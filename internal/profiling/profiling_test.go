package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func withObservedLogger(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestTrackLogsSlowOperation(t *testing.T) {
	logs := withObservedLogger(t)
	SetSlowThreshold(0)
	defer SetSlowThreshold(10 * time.Millisecond)

	stop := Track("test.op")
	time.Sleep(time.Millisecond)
	stop()

	entries := logs.FilterMessage("slow operation").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "test.op", entries[0].ContextMap()["op"])
}

func TestTrackStaysQuietBelowThreshold(t *testing.T) {
	logs := withObservedLogger(t)
	SetSlowThreshold(time.Hour)
	defer SetSlowThreshold(10 * time.Millisecond)

	Track("test.fast")()

	assert.Empty(t, logs.FilterMessage("slow operation").All())
}

func TestSummaryEmitsStructuredFields(t *testing.T) {
	logs := withObservedLogger(t)

	Summary("kdtree.build", zap.Int("points", 42))

	entries := logs.FilterMessage("kdtree.build").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 42, entries[0].ContextMap()["points"])
}

func TestSetLoggerNilDisablesLogging(t *testing.T) {
	SetLogger(nil)
	// must not panic with the no-op logger installed
	Track("test.noop")()
	Summary("test.noop")
}
