package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()
	if debugSink.file != nil {
		_ = debugSink.file.Close()
		debugSink.file = nil
	}
	debugSink.buffer = nil
	debugSink.discard = false
}

func TestBufferedThenFlushed(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Printf("before sink %d", 1)
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(path))
	Println("after sink")
	require.NoError(t, Close())

	data, err := os.ReadFile(path) // #nosec G304 -- test temp path
	require.NoError(t, err)
	assert.Contains(t, string(data), "before sink 1")
	assert.Contains(t, string(data), "after sink")
}

func TestEmptyPathDiscards(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Printf("will vanish")
	require.NoError(t, SetFile(""))
	Printf("also vanishes")

	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()
	assert.Nil(t, debugSink.buffer)
	assert.True(t, debugSink.discard)
}

func TestCloseWithoutFile(t *testing.T) {
	reset()
	t.Cleanup(reset)
	assert.NoError(t, Close())
}
