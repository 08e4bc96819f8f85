package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwick/repolens/internal/models"
)

func manifest() []*models.FileRecord {
	return []*models.FileRecord{
		{Rel: "README.md", Size: 100, Verdict: models.VerdictInclude},
		{Rel: "main.go", Size: 200, Verdict: models.VerdictInclude},
		{Rel: "src/app.go", Size: 300, Verdict: models.VerdictInclude},
		{Rel: "src/app_test.go", Size: 150, Verdict: models.VerdictInclude},
		{Rel: "src/util/latest.py", Size: 50, Verdict: models.VerdictInclude},
		{Rel: "tests/smoke.py", Size: 75, Verdict: models.VerdictInclude},
		{Rel: "img/logo.png", Size: 9000, Verdict: models.VerdictBinary},
	}
}

func TestNewSelectsAllIncluded(t *testing.T) {
	m := New(manifest())

	assert.Equal(t, 6, m.Total())
	assert.Equal(t, 6, m.Count())
	assert.Equal(t, int64(875), m.SelectedSize())
	// Excluded records never become selectable.
	assert.False(t, m.IsSelected("img/logo.png"))
	m.ToggleFile("img/logo.png", true)
	assert.False(t, m.IsSelected("img/logo.png"))
}

func TestToggleFile(t *testing.T) {
	m := New(manifest())

	m.ToggleFile("main.go", false)
	assert.False(t, m.IsSelected("main.go"))
	assert.Equal(t, 5, m.Count())
	assert.Equal(t, int64(675), m.SelectedSize())

	m.ToggleFile("main.go", true)
	assert.True(t, m.IsSelected("main.go"))

	// Unknown paths are a no-op, not a panic.
	m.ToggleFile("no/such/file.go", true)
	assert.Equal(t, 6, m.Count())
}

func TestToggleFolderWritesThrough(t *testing.T) {
	m := New(manifest())

	m.ToggleFolder("src", false)
	assert.False(t, m.IsSelected("src/app.go"))
	assert.False(t, m.IsSelected("src/app_test.go"))
	assert.False(t, m.IsSelected("src/util/latest.py"))
	assert.True(t, m.IsSelected("main.go"))

	// Idempotent overwrite, regardless of interleaved file toggles.
	m.ToggleFile("src/app.go", true)
	m.ToggleFolder("src", true)
	m.ToggleFolder("src", false)
	assert.Equal(t, FolderNone, m.FolderStateOf("src"))

	// A folder name that is a prefix of another must not leak across.
	m.SelectAll()
	m.ToggleFolder("sr", false)
	assert.True(t, m.IsSelected("src/app.go"))
}

func TestSelectAllDeselectAll(t *testing.T) {
	m := New(manifest())

	m.DeselectAll()
	assert.Equal(t, 0, m.Count())
	assert.Empty(t, m.Selected())
	assert.Equal(t, int64(0), m.SelectedSize())

	m.SelectAll()
	assert.Equal(t, m.Total(), m.Count())
}

func TestFilterByExtension(t *testing.T) {
	m := New(manifest())
	m.ToggleFile("main.go", false) // prior state must not survive the filter

	m.FilterByExtension(".go")
	assert.True(t, m.IsSelected("main.go"))
	assert.True(t, m.IsSelected("src/app.go"))
	assert.True(t, m.IsSelected("src/app_test.go"))
	assert.False(t, m.IsSelected("README.md"))
	assert.False(t, m.IsSelected("tests/smoke.py"))
}

func TestToggleTestFilesIsATrueToggle(t *testing.T) {
	m := New(manifest())
	m.ToggleFile("src/app_test.go", false) // mixed prior state
	before := m.Snapshot()

	m.ToggleTestFiles()
	assert.True(t, m.IsSelected("src/app_test.go"))
	assert.False(t, m.IsSelected("tests/smoke.py"))
	// Not a test file by the segment heuristic.
	assert.True(t, m.IsSelected("src/util/latest.py"))

	m.ToggleTestFiles()
	assert.Equal(t, before, m.Snapshot())
}

func TestIsTestPath(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{"tests/smoke.py", true},
		{"pkg/test/helper.go", true},
		{"src/app_test.go", true},
		{"web/app.test.js", true},
		{"src/util/latest.py", false},
		{"contest/entry.go", false},
		{"testing/doc.go", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTestPath(tt.rel), tt.rel)
	}
}

func TestFolderStateOf(t *testing.T) {
	m := New(manifest())

	assert.Equal(t, FolderAll, m.FolderStateOf("src"))
	m.ToggleFile("src/app.go", false)
	assert.Equal(t, FolderSome, m.FolderStateOf("src"))
	m.ToggleFolder("src", false)
	assert.Equal(t, FolderNone, m.FolderStateOf("src"))
	assert.Equal(t, FolderNone, m.FolderStateOf("nonexistent"))
}

func TestSelectedKeepsManifestOrder(t *testing.T) {
	m := New(manifest())
	m.ToggleFile("main.go", false)

	var rels []string
	for _, rec := range m.Selected() {
		rels = append(rels, rec.Rel)
	}
	require.Equal(t, []string{
		"README.md",
		"src/app.go",
		"src/app_test.go",
		"src/util/latest.py",
		"tests/smoke.py",
	}, rels)
}
