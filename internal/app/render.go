package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wrap"

	"github.com/fernwick/repolens/internal/selection"
)

const (
	checkboxOn      = "[x]"
	checkboxOff     = "[ ]"
	checkboxPartial = "[~]"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.windowWidth
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	if m.filtering || m.filterQuery != "" {
		b.WriteString(m.renderFilter(width))
		b.WriteString("\n")
	}
	b.WriteString(m.renderBody(width))
	b.WriteString(m.renderFooter(width))
	return b.String()
}

func (m *Model) renderHeader(width int) string {
	headerStyle := lipgloss.NewStyle().
		Background(m.theme.AccentDim).
		Foreground(m.theme.TextFg).
		Bold(true).
		Width(width).
		Padding(0, 2).
		Align(lipgloss.Center)

	title := "Repolens"
	if m.repoName != "" {
		title = fmt.Sprintf("%s  •  %s", title, m.repoName)
	}
	if m.commit != "" {
		title = fmt.Sprintf("%s @ %s", title, m.commit)
	}
	return headerStyle.Render(title)
}

func (m *Model) renderFilter(width int) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	lineStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Padding(0, 1)
	return lineStyle.Width(width).Render(
		fmt.Sprintf("%s %s", labelStyle.Render("Filter"), m.filterInput.View()))
}

func (m *Model) renderBody(width int) string {
	body := m.bodyHeight()
	if body < 1 {
		body = 1
	}

	var b strings.Builder
	if len(m.visible) == 0 {
		empty := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Padding(0, 2)
		b.WriteString(empty.Render("no files match"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + body
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[m.visible[i]], i == m.cursor, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderRow(row pickerRow, current bool, width int) string {
	var line string
	if row.file != nil {
		box := checkboxOff
		if m.sel.IsSelected(row.file.Rel) {
			box = checkboxOn
		}
		name := row.file.Rel
		indent := ""
		if m.filterQuery == "" {
			name = baseName(row.file.Rel)
			indent = strings.Repeat("  ", row.depth)
		}
		icon := ""
		if m.cfg.ShowIcons {
			icon = iconWithSpace(deviconForName(name, false))
		}
		size := lipgloss.NewStyle().Foreground(m.theme.MutedFg).
			Render(humanize.IBytes(uint64(row.file.Size))) // #nosec G115 -- sizes come from os.FileInfo
		line = fmt.Sprintf("%s%s %s%s  %s", indent, box, icon, name, size)
	} else {
		box := checkboxOff
		switch m.sel.FolderStateOf(row.folder.Path) {
		case selection.FolderAll:
			box = checkboxOn
		case selection.FolderSome:
			box = checkboxPartial
		}
		indent := strings.Repeat("  ", row.depth)
		icon := ""
		if m.cfg.ShowIcons {
			icon = iconWithSpace(deviconForName(row.folder.Name, true))
		}
		line = fmt.Sprintf("%s%s %s%s/", indent, box, icon, row.folder.Name)
	}

	style := lipgloss.NewStyle().Foreground(m.theme.TextFg).Padding(0, 1)
	if current {
		style = style.Background(m.theme.Accent).Foreground(m.theme.AccentFg).Bold(true)
	} else if row.folder != nil {
		style = style.Foreground(m.theme.AccentDim).Bold(true)
	}
	return style.Width(width).Render(line)
}

func (m *Model) renderFooter(width int) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Background(m.theme.Border).
		Width(width).
		Padding(0, 1)

	stats := fmt.Sprintf("%d/%d files · %s selected",
		m.sel.Count(), m.sel.Total(),
		humanize.IBytes(uint64(m.sel.SelectedSize()))) // #nosec G115 -- sum of file sizes
	hints := strings.Join([]string{
		m.renderKeyHint("space", "toggle"),
		m.renderKeyHint("a", "all"),
		m.renderKeyHint("n", "none"),
		m.renderKeyHint("t", "tests"),
		m.renderKeyHint("/", "filter"),
		m.renderKeyHint("e", "export"),
		m.renderKeyHint("q", "quit"),
	}, "  ")

	line := fmt.Sprintf("%s    %s", stats, hints)
	if width > 4 {
		line = wrap.String(line, width-2)
	}
	return footerStyle.Render(line)
}

func (m *Model) renderKeyHint(key, action string) string {
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.WarnFg).Bold(true)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), action)
}

// bodyHeight is the number of tree rows that fit between header and footer.
func (m *Model) bodyHeight() int {
	chrome := 2 // header + footer
	if m.filtering || m.filterQuery != "" {
		chrome++
	}
	if m.windowHeight <= 0 {
		return 20
	}
	return m.windowHeight - chrome - 1
}

func baseName(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
