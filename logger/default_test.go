package logger

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapDefault installs a fresh package-level logger and restores the
// previous one when the test ends.
func swapDefault(t *testing.T, config Config) {
	t.Helper()
	prev := Init(config)
	t.Cleanup(func() {
		Close()
		std.Store(prev)
	})
}

func TestDefault_BeforeInit(t *testing.T) {
	l := Default()
	require.NotNil(t, l)
	assert.Equal(t, InfoLevel, l.Level())
	assert.Empty(t, l.FilePath())
}

func TestDefault_PackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	swapDefault(t, Config{Level: DebugLevel, Console: &buf})

	Fatal("f {}", 1)
	Error("e {}", 2)
	Warn("w {}", 3)
	Info("i {}", 4)
	Debug("d {}", 5)
	Trace("t {}", 6)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "FATAL - f 1")
	assert.Contains(t, lines[1], "ERROR - e 2")
	assert.Contains(t, lines[2], "WARN - w 3")
	assert.Contains(t, lines[3], "INFO - i 4")
	assert.Contains(t, lines[4], "DEBUG - d 5")
}

func TestInit_ReturnsPrevious(t *testing.T) {
	var first, second bytes.Buffer
	swapDefault(t, Config{Level: InfoLevel, Console: &first})
	firstLogger := Default()

	prev := Init(Config{Level: InfoLevel, Console: &second})
	assert.Same(t, firstLogger, prev)

	Info("to second")
	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "to second")
}

func TestInit_FileSink(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "default.log")
	swapDefault(t, Config{Level: InfoLevel, FilePath: logPath})

	Info("package-level {}", "file")
	require.NoError(t, Close())
	require.NoError(t, Close())

	assert.Contains(t, readLog(t, logPath), "INFO - package-level file")
}
