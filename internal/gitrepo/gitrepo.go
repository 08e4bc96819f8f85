// Package gitrepo acquires the repository to render: a shallow clone for
// remote locations, or the directory itself for local paths.
package gitrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/fernwick/repolens/internal/log"
)

// UnknownCommit is the placeholder used when HEAD cannot be resolved.
// Failing to resolve the revision is never fatal.
const UnknownCommit = "(unknown)"

// Checkout is an acquired repository ready for scanning.
type Checkout struct {
	Location string // the location the user asked for
	Dir      string // local directory holding the working tree
	Commit   string // HEAD commit hash, or UnknownCommit

	cleanup func()
}

// Close releases the checkout's temporary storage. It is safe to call on
// every exit path; local directories used in place have nothing to release.
func (c *Checkout) Close() {
	if c.cleanup != nil {
		c.cleanup()
		c.cleanup = nil
	}
}

// Acquire resolves location into a local working tree. An existing local
// directory is used as-is. Anything else is treated as a clone URL and
// fetched shallowly (depth 1) into a temporary directory that Close removes.
func Acquire(ctx context.Context, location string) (*Checkout, error) {
	if info, err := os.Stat(location); err == nil && info.IsDir() {
		log.Printf("using local directory %s", location)
		return &Checkout{
			Location: location,
			Dir:      location,
			Commit:   headCommit(location),
		}, nil
	}

	tmp, err := os.MkdirTemp("", "repolens-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	dir := filepath.Join(tmp, "repo")

	log.Printf("cloning %s into %s", location, dir)
	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          location,
		Depth:        1,
		SingleBranch: true,
		Tags:         git.NoTags,
	})
	if err != nil {
		_ = os.RemoveAll(tmp)
		return nil, fmt.Errorf("cloning %s: %w", location, err)
	}

	return &Checkout{
		Location: location,
		Dir:      dir,
		Commit:   headCommit(dir),
		cleanup:  func() { _ = os.RemoveAll(tmp) },
	}, nil
}

// headCommit resolves HEAD best-effort.
func headCommit(dir string) string {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		log.Printf("resolving HEAD in %s: %v", dir, err)
		return UnknownCommit
	}
	head, err := repo.Head()
	if err != nil {
		log.Printf("resolving HEAD in %s: %v", dir, err)
		return UnknownCommit
	}
	return head.Hash().String()
}

// ShortCommit trims a commit hash for display.
func (c *Checkout) ShortCommit() string {
	if c.Commit == UnknownCommit || len(c.Commit) < 8 {
		return c.Commit
	}
	return c.Commit[:8]
}

// Name derives a human name for the repository from its location, used for
// titles and default output filenames.
func Name(location string) string {
	trimmed := strings.TrimRight(location, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	base := filepath.Base(filepath.FromSlash(trimmed))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "repo"
	}
	return base
}

// DefaultOutputPath places the document in the system temp directory, named
// after the repository.
func DefaultOutputPath(location string) string {
	return filepath.Join(os.TempDir(), Name(location)+".html")
}
