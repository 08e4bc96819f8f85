package gitrepo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLocalDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o600))

	co, err := Acquire(context.Background(), dir)
	require.NoError(t, err)
	defer co.Close()

	assert.Equal(t, dir, co.Dir)
	// Not a git repository: the revision degrades to the placeholder.
	assert.Equal(t, UnknownCommit, co.Commit)

	// Close must not remove a directory we did not create.
	co.Close()
	_, err = os.Stat(filepath.Join(dir, "f.txt"))
	assert.NoError(t, err)
}

func TestAcquireBadRemote(t *testing.T) {
	_, err := Acquire(context.Background(), "file:///nonexistent/repolens-test-repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cloning")
}

func TestCloseIdempotent(t *testing.T) {
	removed := 0
	co := &Checkout{cleanup: func() { removed++ }}
	co.Close()
	co.Close()
	assert.Equal(t, 1, removed)
}

func TestShortCommit(t *testing.T) {
	co := &Checkout{Commit: "0123456789abcdef0123456789abcdef01234567"}
	assert.Equal(t, "01234567", co.ShortCommit())

	co = &Checkout{Commit: UnknownCommit}
	assert.Equal(t, UnknownCommit, co.ShortCommit())
}

func TestName(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"https://github.com/owner/project", "project"},
		{"https://github.com/owner/project.git", "project"},
		{"https://github.com/owner/project.git/", "project"},
		{"git@host:group/thing.git", "thing"},
		{"/home/dev/src/local-repo", "local-repo"},
		{"", "repo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.location), tt.location)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	got := DefaultOutputPath("https://github.com/owner/project.git")
	assert.True(t, strings.HasSuffix(got, "project.html"), got)
	assert.True(t, filepath.IsAbs(got))
}
