package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwick/repolens/internal/config"
	"github.com/fernwick/repolens/internal/models"
	"github.com/fernwick/repolens/internal/selection"
	"github.com/fernwick/repolens/internal/tree"
)

func pickerFixture() (*models.FolderNode, *selection.Model) {
	records := []*models.FileRecord{
		{Rel: "README.md", Size: 120, Verdict: models.VerdictInclude},
		{Rel: "src/main.go", Size: 640, Verdict: models.VerdictInclude},
		{Rel: "src/main_test.go", Size: 300, Verdict: models.VerdictInclude},
		{Rel: "src/util/strings.go", Size: 90, Verdict: models.VerdictInclude},
	}
	return tree.Build(records), selection.New(records)
}

func newTestPicker() *Model {
	root, sel := pickerFixture()
	return NewModel(config.DefaultConfig(), "demo", "abcd1234", root, sel)
}

func TestNewModelFlattensTree(t *testing.T) {
	m := newTestPicker()

	require.NotNil(t, m)
	// src/, src/util/, strings.go, main.go, main_test.go, README.md
	require.Len(t, m.rows, 6)
	assert.Equal(t, "src", m.rows[0].folder.Name)
	assert.Equal(t, "src/util", m.rows[1].folder.Path)
	assert.Equal(t, "src/util/strings.go", m.rows[2].file.Rel)
	assert.Equal(t, "README.md", m.rows[5].file.Rel)
	assert.Len(t, m.visible, len(m.rows))
}

func TestToggleFileUnderCursor(t *testing.T) {
	m := newTestPicker()

	m.cursor = 3 // src/main.go
	m.toggleCurrent()
	assert.False(t, m.sel.IsSelected("src/main.go"))

	m.toggleCurrent()
	assert.True(t, m.sel.IsSelected("src/main.go"))
}

func TestToggleFolderUnderCursor(t *testing.T) {
	m := newTestPicker()

	m.cursor = 0 // src/
	m.toggleCurrent()
	assert.False(t, m.sel.IsSelected("src/main.go"))
	assert.False(t, m.sel.IsSelected("src/util/strings.go"))
	assert.True(t, m.sel.IsSelected("README.md"))

	// partially reselect, then folder toggle selects the rest
	m.sel.ToggleFile("src/main.go", true)
	m.toggleCurrent()
	assert.True(t, m.sel.IsSelected("src/util/strings.go"))
}

func TestFilterShowsMatchingFilesOnly(t *testing.T) {
	m := newTestPicker()

	m.filterQuery = "main"
	m.applyFilter()

	require.Len(t, m.visible, 2)
	for _, idx := range m.visible {
		assert.NotNil(t, m.rows[idx].file)
		assert.Contains(t, m.rows[idx].file.Rel, "main")
	}

	m.filterQuery = ""
	m.applyFilter()
	assert.Len(t, m.visible, len(m.rows))
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestPicker()
	m.windowHeight = 10

	m.moveCursor(-5)
	assert.Equal(t, 0, m.cursor)

	m.moveCursor(100)
	assert.Equal(t, len(m.visible)-1, m.cursor)
}

func TestKeysDriveSelection(t *testing.T) {
	m := newTestPicker()

	press := func(s string) {
		_, _ = m.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}

	press("n")
	assert.Equal(t, 0, m.sel.Count())

	press("a")
	assert.Equal(t, 4, m.sel.Count())

	press("t")
	assert.False(t, m.sel.IsSelected("src/main_test.go"))
	assert.True(t, m.sel.IsSelected("src/main.go"))

	press("t")
	assert.True(t, m.sel.IsSelected("src/main_test.go"))
}

func TestExportKeyEndsSession(t *testing.T) {
	m := newTestPicker()

	model, cmd := m.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)

	got, ok := model.(*Model)
	require.True(t, ok)
	assert.True(t, got.Exported())
}

func TestQuitKeyAborts(t *testing.T) {
	m := newTestPicker()

	model, cmd := m.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	got, ok := model.(*Model)
	require.True(t, ok)
	assert.False(t, got.Exported())
}

func TestViewRendersTreeAndFooter(t *testing.T) {
	m := newTestPicker()
	m.windowWidth = 100
	m.windowHeight = 30

	out := m.View()
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "4/4 files")
	assert.Contains(t, out, "export")
}

func TestPickerSession(t *testing.T) {
	root, sel := pickerFixture()
	cfg := config.DefaultConfig()
	cfg.ShowIcons = false
	tm := teatest.NewTestModel(
		t,
		NewModel(cfg, "demo", "", root, sel),
		teatest.WithInitialTermSize(100, 30),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok)
	assert.True(t, final.Exported())
	assert.False(t, sel.IsSelected("src/main_test.go"))
	assert.Equal(t, 3, sel.Count())
}
