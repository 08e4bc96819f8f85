package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwick/repolens/internal/models"
)

func TestRenderCode(t *testing.T) {
	r := New(DefaultStyle)
	out := r.Render("package main\n\nfunc main() {}\n", "main.go")

	assert.Contains(t, out, "<div class=\"highlight\">")
	assert.Contains(t, out, "main")
	assert.NotContains(t, out, "Failed to render")
}

func TestRenderMarkdown(t *testing.T) {
	r := New(DefaultStyle)
	out := r.Render("# Title\n\nSome *prose* here.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", "README.md")

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>prose</em>")
	assert.Contains(t, out, "<table>")
}

func TestRenderUnknownExtensionFallsBack(t *testing.T) {
	r := New(DefaultStyle)
	out := r.Render("just words\n", "notes.xyzzy")

	assert.Contains(t, out, "<div class=\"highlight\">")
	assert.Contains(t, out, "just words")
}

func TestRenderEscapesContent(t *testing.T) {
	r := New(DefaultStyle)
	out := r.Render("<script>alert(1)</script>\n", "evil.txt")

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestNewUnknownStyleFallsBack(t *testing.T) {
	r := New("no-such-style")
	assert.NotEmpty(t, r.StyleCSS())
}

func TestStyleCSS(t *testing.T) {
	css := New(DefaultStyle).StyleCSS()
	assert.Contains(t, css, ".chroma")
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	mk := func(rel, content string) *models.FileRecord {
		abs := filepath.Join(dir, rel)
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o600))
		return &models.FileRecord{Path: abs, Rel: rel, Size: int64(len(content)), Verdict: models.VerdictInclude}
	}

	records := []*models.FileRecord{
		mk("a.go", "package a\n"),
		mk("b.md", "# heading\n"),
		{Path: filepath.Join(dir, "missing.txt"), Rel: "missing.txt", Verdict: models.VerdictInclude},
		{Path: filepath.Join(dir, "skipped.png"), Rel: "skipped.png", Verdict: models.VerdictBinary},
	}

	r := New(DefaultStyle)
	r.RenderAll(context.Background(), records)

	assert.Contains(t, records[0].Body, "highlight")
	assert.Equal(t, "package a\n", records[0].Text)
	assert.Contains(t, records[1].Body, "<h1>")

	// Unreadable file degrades to a per-file notice, siblings unaffected.
	assert.Contains(t, records[2].Body, "Failed to read")

	// Excluded records are never rendered.
	assert.Empty(t, records[3].Body)
	assert.Empty(t, records[3].Text)
}

func TestLoadAllReplacesInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "mixed.txt")
	require.NoError(t, os.WriteFile(abs, []byte{'o', 'k', 0xff, '!'}, 0o600))
	records := []*models.FileRecord{{Path: abs, Rel: "mixed.txt", Verdict: models.VerdictInclude}}

	LoadAll(context.Background(), records)
	assert.Equal(t, "ok�!", records[0].Text)
}

func TestStyleNames(t *testing.T) {
	names := StyleNames()
	assert.Contains(t, names, "dracula")
	assert.Contains(t, names, "monokai")
}
