package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_MultipleLevels verifies that records from concurrent
// goroutines are never interleaved within a line.
func TestConcurrency_MultipleLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DebugLevel, Console: &buf})

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Debug("goroutine-{}-debug-{}", id, j)
				l.Info("goroutine-{}-info-{}", id, j)
				l.Warn("goroutine-{}-warn-{}", id, j)
				l.Error("goroutine-{}-error-{}", id, j)
				l.Trace("goroutine-{}-trace-{}", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine*4)

	for i, line := range lines {
		if !assert.Regexp(t, recordPattern, line+"\n", "line %d appears garbled", i) {
			return
		}
		assert.Contains(t, line, "goroutine-", "line %d appears garbled", i)
	}
	assert.NotContains(t, buf.String(), "-trace-")
}

// TestConcurrency_FileSink verifies that a file sink receives whole records.
func TestConcurrency_FileSink(t *testing.T) {
	logPath := t.TempDir() + "/concurrent.log"
	l := New(Config{Level: InfoLevel, FilePath: logPath})

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			l.Info("concurrent-log id={} status={}", id, "running")
		}(i)
	}
	wg.Wait()
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimSpace(readLog(t, logPath)), "\n")
	require.Len(t, lines, numGoroutines)
	for i, line := range lines {
		assert.Contains(t, line, "INFO - concurrent-log id=", "line %d", i)
		assert.True(t, strings.HasSuffix(line, "status=running"), "line %d = %q", i, line)
	}
}
