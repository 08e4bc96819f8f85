// Package emit assembles the final self-contained HTML document: the
// rendered human view with its selection panel, the embedded raw file data,
// and the machine-export view regenerated client-side from the selection.
package emit

import (
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"path"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/fernwick/repolens/internal/gitrepo"
	"github.com/fernwick/repolens/internal/models"
	"github.com/fernwick/repolens/internal/scan"
	"github.com/fernwick/repolens/internal/tree"
)

// fileIcons maps extensions to the emoji shown next to filenames.
var fileIcons = map[string]string{
	".py":    "🐍",
	".js":    "💛",
	".jsx":   "⚛️",
	".ts":    "🔷",
	".tsx":   "⚛️",
	".html":  "🌐",
	".css":   "🎨",
	".scss":  "🎨",
	".json":  "📋",
	".md":    "📄",
	".txt":   "📝",
	".yaml":  "⚙️",
	".yml":   "⚙️",
	".toml":  "⚙️",
	".xml":   "📰",
	".sh":    "🔧",
	".go":    "🐹",
	".rs":    "🦀",
	".java":  "☕",
	".cpp":   "⚡",
	".c":     "⚡",
	".rb":    "💎",
	".php":   "🐘",
	".swift": "🦅",
	".kt":    "🟣",
}

const defaultIcon = "📄"

// FileIcon returns the emoji for a filename's extension.
func FileIcon(name string) string {
	if icon, ok := fileIcons[strings.ToLower(path.Ext(name))]; ok {
		return icon
	}
	return defaultIcon
}

// Slugify turns a path into an HTML anchor id: alphanumerics, hyphens and
// underscores survive, everything else becomes a hyphen.
func Slugify(p string) string {
	var b strings.Builder
	for _, ch := range p {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// HumanBytes formats a byte count for display.
func HumanBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

type tocEntry struct {
	Anchor string
	Icon   string
	Rel    string
}

type section struct {
	Anchor string
	Icon   string
	Rel    string
	Size   string
	Body   template.HTML
}

type skipItem struct {
	Rel  string
	Size string
}

type skipList struct {
	Title string
	Items []skipItem
}

type pageData struct {
	RepoName      string
	Location      string
	LocationIsURL bool
	ShortCommit   string
	TotalFiles    int
	RenderedCount int
	SkippedCount  int
	SelectedSize  string
	HighlightCSS  template.CSS
	TOC           []tocEntry
	TreeHTML      template.HTML
	SkipLists     []skipList
	Sections      []section
	FileDataJSON  template.JS
}

// embeddedFile is the per-file raw data shipped to the client so the export
// view can be regenerated without re-fetching anything.
type embeddedFile struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	Content string `json:"content"`
}

// Document renders the full HTML page. records is the complete manifest in
// manifest order; highlightCSS is the stylesheet for the code fragments.
func Document(checkout *gitrepo.Checkout, records []*models.FileRecord, highlightCSS string) (string, error) {
	included := scan.Included(records)
	groups := scan.ByVerdict(records)

	data := pageData{
		RepoName:      gitrepo.Name(checkout.Location),
		Location:      checkout.Location,
		LocationIsURL: strings.Contains(checkout.Location, "://"),
		ShortCommit:   checkout.ShortCommit(),
		TotalFiles:    len(records),
		RenderedCount: len(included),
		SkippedCount:  len(records) - len(included),
		SelectedSize:  HumanBytes(scan.TotalSize(included)),
		HighlightCSS:  template.CSS(highlightCSS),
		TreeHTML:      template.HTML(treeHTML(tree.Build(records))),
	}

	for _, rec := range included {
		anchor := Slugify(rec.Rel)
		data.TOC = append(data.TOC, tocEntry{Anchor: anchor, Icon: FileIcon(rec.Rel), Rel: rec.Rel})
		data.Sections = append(data.Sections, section{
			Anchor: anchor,
			Icon:   FileIcon(rec.Rel),
			Rel:    rec.Rel,
			Size:   HumanBytes(rec.Size),
			Body:   template.HTML(rec.Body),
		})
	}

	for _, group := range []struct {
		title   string
		verdict models.Verdict
	}{
		{"Skipped bloat files", models.VerdictBloat},
		{"Skipped binaries", models.VerdictBinary},
		{"Skipped large files", models.VerdictTooLarge},
	} {
		items := groups[group.verdict]
		if len(items) == 0 {
			continue
		}
		list := skipList{Title: group.title}
		for _, rec := range items {
			list.Items = append(list.Items, skipItem{Rel: rec.Rel, Size: HumanBytes(rec.Size)})
		}
		data.SkipLists = append(data.SkipLists, list)
	}

	embedded := make([]embeddedFile, 0, len(included))
	for _, rec := range included {
		embedded = append(embedded, embeddedFile{Path: rec.Rel, Size: rec.Size, Content: rec.Text})
	}
	// encoding/json escapes <, > and & inside strings, which keeps the
	// embedded content safe inside the script element.
	raw, err := json.Marshal(embedded)
	if err != nil {
		return "", fmt.Errorf("embedding file data: %w", err)
	}
	data.FileDataJSON = template.JS(raw) // #nosec G203 -- marshalled above with HTML escaping on

	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return b.String(), nil
}

// treeHTML renders the checkbox selector for the folder hierarchy, folders
// first then files, everything checked initially.
func treeHTML(root *models.FolderNode) string {
	var b strings.Builder
	writeTreeNode(&b, root, 0)
	return b.String()
}

func writeTreeNode(b *strings.Builder, node *models.FolderNode, level int) {
	for _, sub := range node.Folders {
		fmt.Fprintf(b, "<div class=\"tree-folder\" data-level=\"%d\">", level)
		b.WriteString("<label>")
		fmt.Fprintf(b, "<input type=\"checkbox\" class=\"folder-checkbox\" data-folder=\"%s\" checked>", html.EscapeString(sub.Path))
		fmt.Fprintf(b, "<span class=\"folder-icon\">📁</span> <strong>%s/</strong>", html.EscapeString(sub.Name))
		b.WriteString("</label>")
		b.WriteString("<div class=\"tree-children\">")
		writeTreeNode(b, sub, level+1)
		b.WriteString("</div></div>")
	}
	for _, file := range node.Files {
		fmt.Fprintf(b, "<div class=\"tree-file\" data-level=\"%d\">", level)
		b.WriteString("<label>")
		fmt.Fprintf(b, "<input type=\"checkbox\" class=\"file-checkbox\" data-file=\"%s\" checked>", html.EscapeString(file.Rel))
		fmt.Fprintf(b, "<span class=\"file-icon\">%s</span> %s", FileIcon(file.Rel), html.EscapeString(path.Base(file.Rel)))
		fmt.Fprintf(b, " <span class=\"muted\">(%s)</span>", HumanBytes(file.Size))
		b.WriteString("</label>")
		b.WriteString("</div>")
	}
}
