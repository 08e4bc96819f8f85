// Package models defines the data objects shared across repolens packages.
package models

// Verdict is the triage outcome for one scanned file. Exactly one verdict is
// assigned per file; anything other than VerdictInclude keeps the file out of
// the folder tree and the selection.
type Verdict int

const (
	// VerdictInclude marks a file as renderable and selectable.
	VerdictInclude Verdict = iota
	// VerdictIgnored marks version-control internals (anything under .git).
	VerdictIgnored
	// VerdictBloat marks lockfiles and generated or dependency directories.
	VerdictBloat
	// VerdictTooLarge marks files over the configured size ceiling.
	VerdictTooLarge
	// VerdictBinary marks files that fail the text sniff.
	VerdictBinary
)

// String returns the short reason label used in logs and skip lists.
func (v Verdict) String() string {
	switch v {
	case VerdictInclude:
		return "ok"
	case VerdictIgnored:
		return "ignored"
	case VerdictBloat:
		return "bloat"
	case VerdictTooLarge:
		return "too_large"
	case VerdictBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Included reports whether the file takes part in rendering and selection.
func (v Verdict) Included() bool { return v == VerdictInclude }

// FileRecord is one regular file found under the repository root. Records are
// created by the scanner and immutable afterwards, except Text and Body which
// the renderer populates exactly once before the document is emitted.
type FileRecord struct {
	Path    string // absolute path on disk
	Rel     string // slash-separated path relative to the repository root
	Size    int64
	Verdict Verdict

	Text string // decoded file text, populated for included records only
	Body string // rendered HTML fragment, populated for included records only
}

// FolderNode is a synthetic directory entry. A node exists only when at least
// one descendant file has VerdictInclude; folders holding nothing but excluded
// files are pruned entirely. Children stay sorted: subfolders before files,
// each group alphabetical by name.
type FolderNode struct {
	Path    string // slash-separated path relative to the root; "" for the root
	Name    string
	Folders []*FolderNode
	Files   []*FileRecord
}
