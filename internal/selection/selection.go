// Package selection holds the live, user-mutable subset of includable files.
//
// The model owns the only mutable state after the build phase: a boolean per
// included file. Folder checkboxes have no stored state of their own; their
// display state is derived from descendant files on demand, and toggling a
// folder writes through to every descendant entry. That keeps the folder and
// file views from ever diverging.
package selection

import (
	"path"
	"strings"

	"github.com/fernwick/repolens/internal/models"
)

// FolderState is the derived display state of a folder checkbox.
type FolderState int

const (
	// FolderNone means no descendant file is selected.
	FolderNone FolderState = iota
	// FolderSome means a strict subset of descendant files is selected.
	FolderSome
	// FolderAll means every descendant file is selected.
	FolderAll
)

// Model tracks which included files are currently chosen. All records with
// other verdicts are invisible to it; actions on unknown paths are no-ops.
type Model struct {
	records  []*models.FileRecord // included records, manifest order
	selected map[string]bool
}

// New builds a model over the manifest's included records, everything
// selected. Records with other verdicts are dropped here once, so the
// presentation layers never re-derive includability from raw paths.
func New(records []*models.FileRecord) *Model {
	m := &Model{selected: make(map[string]bool)}
	for _, rec := range records {
		if !rec.Verdict.Included() {
			continue
		}
		m.records = append(m.records, rec)
		m.selected[rec.Rel] = true
	}
	return m
}

// ToggleFile sets one file's selection. Paths outside the included set are
// ignored.
func (m *Model) ToggleFile(rel string, value bool) {
	if _, ok := m.selected[rel]; !ok {
		return
	}
	m.selected[rel] = value
}

// ToggleFolder sets every included file at or under folder to value. The
// write-through is idempotent: applying the same value twice is a no-op.
func (m *Model) ToggleFolder(folder string, value bool) {
	prefix := folder + "/"
	for rel := range m.selected {
		if rel == folder || strings.HasPrefix(rel, prefix) {
			m.selected[rel] = value
		}
	}
}

// SelectAll marks every included file selected.
func (m *Model) SelectAll() {
	for rel := range m.selected {
		m.selected[rel] = true
	}
}

// DeselectAll clears the whole selection.
func (m *Model) DeselectAll() {
	for rel := range m.selected {
		m.selected[rel] = false
	}
}

// FilterByExtension keeps only files whose path ends in ext, dropping
// everything else.
func (m *Model) FilterByExtension(ext string) {
	for rel := range m.selected {
		m.selected[rel] = strings.HasSuffix(rel, ext)
	}
}

// ToggleTestFiles flips the current selection of every test-looking file.
// It is a true toggle, not a filter: invoking it twice restores the exact
// prior state.
func (m *Model) ToggleTestFiles() {
	for rel := range m.selected {
		if IsTestPath(rel) {
			m.selected[rel] = !m.selected[rel]
		}
	}
}

// IsTestPath applies the test-file heuristic: a path segment named test or
// tests, or a basename containing "_test." or ".test.". The match is
// segment-scoped so paths like "latest.py" stay untouched.
func IsTestPath(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if seg == "test" || seg == "tests" {
			return true
		}
	}
	base := path.Base(rel)
	return strings.Contains(base, "_test.") || strings.Contains(base, ".test.")
}

// IsSelected reports one file's state. Unknown paths report false.
func (m *Model) IsSelected(rel string) bool {
	return m.selected[rel]
}

// FolderStateOf derives the checkbox display state for a folder from its
// descendant files.
func (m *Model) FolderStateOf(folder string) FolderState {
	prefix := folder + "/"
	var total, chosen int
	for rel, on := range m.selected {
		if rel != folder && !strings.HasPrefix(rel, prefix) {
			continue
		}
		total++
		if on {
			chosen++
		}
	}
	switch {
	case total == 0 || chosen == 0:
		return FolderNone
	case chosen == total:
		return FolderAll
	default:
		return FolderSome
	}
}

// Selected returns the chosen records in manifest order, the canonical order
// for export.
func (m *Model) Selected() []*models.FileRecord {
	out := make([]*models.FileRecord, 0, len(m.records))
	for _, rec := range m.records {
		if m.selected[rec.Rel] {
			out = append(out, rec)
		}
	}
	return out
}

// Records returns every included record in manifest order.
func (m *Model) Records() []*models.FileRecord {
	return m.records
}

// Count returns how many files are currently selected.
func (m *Model) Count() int {
	var n int
	for _, on := range m.selected {
		if on {
			n++
		}
	}
	return n
}

// Total returns how many files are selectable at all.
func (m *Model) Total() int {
	return len(m.records)
}

// SelectedSize sums the byte sizes of the current selection.
func (m *Model) SelectedSize() int64 {
	var total int64
	for _, rec := range m.records {
		if m.selected[rec.Rel] {
			total += rec.Size
		}
	}
	return total
}

// Snapshot captures the current boolean mapping, for tests and undo-style
// comparisons.
func (m *Model) Snapshot() map[string]bool {
	out := make(map[string]bool, len(m.selected))
	for rel, on := range m.selected {
		out[rel] = on
	}
	return out
}
