// Package app implements the interactive file picker shown between scanning
// and rendering. The picker presents the pruned folder tree with checkboxes,
// lets the user adjust the selection, and reports whether the session ended
// with an export or an abort.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernwick/repolens/internal/config"
	"github.com/fernwick/repolens/internal/models"
	"github.com/fernwick/repolens/internal/selection"
	"github.com/fernwick/repolens/internal/theme"
	"github.com/fernwick/repolens/internal/tree"
)

// pickerRow is one visible line of the flattened tree. Exactly one of folder
// and file is set.
type pickerRow struct {
	folder *models.FolderNode
	file   *models.FileRecord
	depth  int
}

// Model is the Bubble Tea model for the picker.
type Model struct {
	cfg   *config.AppConfig
	theme *theme.Theme
	sel   *selection.Model

	repoName string
	commit   string

	rows    []pickerRow
	visible []int // indexes into rows surviving the filter
	cursor  int   // index into visible
	offset  int   // first visible row shown on screen

	filterInput textinput.Model
	filtering   bool
	filterQuery string

	windowWidth  int
	windowHeight int

	exported bool
	quitting bool
}

// NewModel builds a picker over the given tree and selection. The selection
// is mutated in place as the user toggles entries.
func NewModel(cfg *config.AppConfig, repoName, commit string, root *models.FolderNode, sel *selection.Model) *Model {
	ti := textinput.New()
	ti.Placeholder = "filter files"
	ti.CharLimit = 128

	th := theme.ByName(cfg.Theme)
	if th == nil {
		th = theme.ByName(theme.DefaultName)
	}
	m := &Model{
		cfg:         cfg,
		theme:       th,
		sel:         sel,
		repoName:    repoName,
		commit:      commit,
		filterInput: ti,
	}
	m.rows = flattenTree(root)
	m.applyFilter()
	return m
}

// Exported reports whether the session ended with an export request rather
// than an abort.
func (m *Model) Exported() bool { return m.exported }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.clampViewport()
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "e", "enter":
		m.exported = true
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-m.bodyHeight())
	case "pgdown":
		m.moveCursor(m.bodyHeight())
	case "g", "home":
		m.cursor = 0
		m.clampViewport()
	case "G", "end":
		m.cursor = len(m.visible) - 1
		m.clampViewport()
	case " ":
		m.toggleCurrent()
	case "a":
		m.sel.SelectAll()
	case "n":
		m.sel.DeselectAll()
	case "t":
		m.sel.ToggleTestFiles()
	case "/":
		m.filtering = true
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filterQuery = ""
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if q := m.filterInput.Value(); q != m.filterQuery {
		m.filterQuery = q
		m.applyFilter()
	}
	return m, cmd
}

// toggleCurrent flips the entry under the cursor. A folder toggle selects
// every descendant unless all of them are already selected, in which case it
// deselects them.
func (m *Model) toggleCurrent() {
	row, ok := m.currentRow()
	if !ok {
		return
	}
	if row.file != nil {
		m.sel.ToggleFile(row.file.Rel, !m.sel.IsSelected(row.file.Rel))
		return
	}
	value := m.sel.FolderStateOf(row.folder.Path) != selection.FolderAll
	m.sel.ToggleFolder(row.folder.Path, value)
}

func (m *Model) currentRow() (pickerRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return pickerRow{}, false
	}
	return m.rows[m.visible[m.cursor]], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampViewport()
}

func (m *Model) clampViewport() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	body := m.bodyHeight()
	if body < 1 {
		body = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+body {
		m.offset = m.cursor - body + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// applyFilter recomputes the visible rows. With an empty query every row is
// shown in tree order; with a query only matching file rows are shown, as a
// flat list.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterQuery))
	m.visible = m.visible[:0]
	for i, row := range m.rows {
		if query == "" {
			m.visible = append(m.visible, i)
			continue
		}
		if row.file != nil && strings.Contains(strings.ToLower(row.file.Rel), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset = 0
	m.clampViewport()
}

// flattenTree turns the folder hierarchy into display rows, folders before
// their files, preserving the tree's deterministic order.
func flattenTree(root *models.FolderNode) []pickerRow {
	var rows []pickerRow
	tree.Walk(root, func(folder *models.FolderNode, file *models.FileRecord, depth int) {
		rows = append(rows, pickerRow{folder: folder, file: file, depth: depth})
	})
	return rows
}
