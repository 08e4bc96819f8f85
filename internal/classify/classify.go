// Package classify decides, per file, whether and why a file is kept out of
// the rendered output.
package classify

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/fernwick/repolens/internal/models"
)

// DefaultMaxBytes is the default size ceiling for rendered files (50 KiB).
const DefaultMaxBytes = 50 * 1024

// sniffLen is how much of a file the binary sniff reads.
const sniffLen = 8192

// bloatFiles are dependency lockfiles skipped by default.
var bloatFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"poetry.lock":       true,
	"Cargo.lock":        true,
	"pnpm-lock.yaml":    true,
	"Gemfile.lock":      true,
	"composer.lock":     true,
	"Pipfile.lock":      true,
	"go.sum":            true,
}

// bloatDirs are generated or dependency directories skipped by default.
var bloatDirs = map[string]bool{
	"node_modules": true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
	".next":        true,
	".nuxt":        true,
	"target":       true,
	"out":          true,
	".gradle":      true,
	".cache":       true,
}

// binaryExtensions short-circuit the content sniff.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".bmp": true, ".svg": true, ".ico": true,
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".bz2": true,
	".xz": true, ".7z": true, ".rar": true,
	".mp3": true, ".mp4": true, ".mov": true, ".avi": true, ".mkv": true,
	".wav": true, ".ogg": true, ".flac": true,
	".ttf": true, ".otf": true, ".eot": true, ".woff": true, ".woff2": true,
	".so": true, ".dll": true, ".dylib": true, ".class": true, ".jar": true,
	".exe": true, ".bin": true,
}

// Policy carries the tunable classification parameters.
type Policy struct {
	MaxBytes  int64
	SkipBloat bool
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{MaxBytes: DefaultMaxBytes, SkipBloat: true}
}

// Decide classifies one file and returns its record. absPath is the on-disk
// location, rel the slash-separated path under the repository root.
//
// The check order matters since the categories overlap: version-control
// internals, then bloat, then size, then the binary sniff. Stat failures
// degrade to size 0 so classification always terminates with a verdict.
func Decide(absPath, rel string, policy Policy) *models.FileRecord {
	var size int64
	if info, err := os.Stat(absPath); err == nil {
		size = info.Size()
	}

	rec := &models.FileRecord{Path: absPath, Rel: rel, Size: size}

	switch {
	case underVCS(rel):
		rec.Verdict = models.VerdictIgnored
	case policy.SkipBloat && isBloat(rel):
		rec.Verdict = models.VerdictBloat
	case size > policy.MaxBytes:
		rec.Verdict = models.VerdictTooLarge
	case looksBinary(absPath, rel):
		rec.Verdict = models.VerdictBinary
	default:
		rec.Verdict = models.VerdictInclude
	}
	return rec
}

// underVCS reports whether any path segment is the git metadata directory.
func underVCS(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".git" {
			return true
		}
	}
	return false
}

// isBloat reports whether the file is a known lockfile or lives under a
// generated/dependency directory.
func isBloat(rel string) bool {
	if bloatFiles[path.Base(rel)] {
		return true
	}
	for _, seg := range strings.Split(rel, "/") {
		if bloatDirs[seg] {
			return true
		}
	}
	return false
}

// looksBinary sniffs the file: a known binary extension, a null byte in the
// first 8 KiB, or invalid UTF-8 in that chunk all count as binary. Read
// failures count as binary too, so an unreadable file is excluded rather
// than crashing the scan.
func looksBinary(absPath, rel string) bool {
	if binaryExtensions[strings.ToLower(path.Ext(rel))] {
		return true
	}

	f, err := os.Open(absPath) // #nosec G304 -- path comes from walking the acquired checkout
	if err != nil {
		return true
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return true
	}
	chunk := buf[:n]

	if bytes.IndexByte(chunk, 0) >= 0 {
		return true
	}
	return !validTextChunk(chunk)
}

// validTextChunk checks UTF-8 validity, tolerating a rune truncated by the
// 8 KiB read boundary.
func validTextChunk(chunk []byte) bool {
	for len(chunk) > 0 {
		r, size := utf8.DecodeRune(chunk)
		if r == utf8.RuneError && size == 1 {
			// A partial rune at the very end is a read-boundary artifact,
			// not binary content.
			if len(chunk) < utf8.UTFMax && utf8.RuneStart(chunk[0]) {
				return true
			}
			return false
		}
		chunk = chunk[size:]
	}
	return true
}
