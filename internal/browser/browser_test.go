package browser

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUsesPlatformOpener(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("opener lookup differs on windows")
	}

	origLookup, origStart := LookupPath, startCommand
	t.Cleanup(func() { LookupPath, startCommand = origLookup, origStart })

	var launched string
	var launchedArgs []string
	LookupPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	startCommand = func(name string, args ...string) error {
		launched = name
		launchedArgs = args
		return nil
	}

	require.NoError(t, Open("file:///tmp/doc.html"))
	assert.NotEmpty(t, launched)
	assert.Equal(t, "file:///tmp/doc.html", launchedArgs[len(launchedArgs)-1])
}

func TestOpenMissingOpener(t *testing.T) {
	origLookup := LookupPath
	t.Cleanup(func() { LookupPath = origLookup })

	LookupPath = func(string) (string, error) { return "", errors.New("not found") }
	err := Open("file:///tmp/doc.html")
	assert.Error(t, err)
}

func TestOpenLaunchFailure(t *testing.T) {
	origLookup, origStart := LookupPath, startCommand
	t.Cleanup(func() { LookupPath, startCommand = origLookup, origStart })

	LookupPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	startCommand = func(string, ...string) error { return errors.New("boom") }

	assert.Error(t, Open("file:///tmp/doc.html"))
}

func TestOpenerFor(t *testing.T) {
	name, _ := openerFor("linux")
	assert.Equal(t, "xdg-open", name)
	name, _ = openerFor("darwin")
	assert.Equal(t, "open", name)
	name, _ = openerFor("plan9")
	assert.Empty(t, name)
}
