// Package render turns raw file text into HTML: syntax-highlighted code via
// chroma, or rendered prose for markdown files via goldmark. Rendering never
// returns an error to the pipeline; anything that fails degrades to an
// escaped inline notice for that file only.
package render

import (
	"bytes"
	"fmt"
	"html"
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownExtensions are rendered as prose instead of highlighted code.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
	".mkdn":     true,
}

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "dracula"

// Renderer converts (text, filename) pairs into HTML fragments. It is safe
// for concurrent use: chroma lexers, the formatter, and goldmark are all
// stateless per call.
type Renderer struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
	markdown  goldmark.Markdown
}

// New builds a renderer using the named chroma style, falling back to the
// default style for unknown names.
func New(styleName string) *Renderer {
	style := styles.Get(styleName)
	if styleName == "" || style == styles.Fallback {
		style = styles.Get(DefaultStyle)
	}
	return &Renderer{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     style,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render produces the HTML body for one file. Markdown becomes prose,
// everything else highlighted code wrapped in a .highlight div. Failures
// return an escaped error notice instead of propagating.
func (r *Renderer) Render(text, rel string) string {
	if markdownExtensions[strings.ToLower(path.Ext(rel))] {
		return r.renderMarkdown(text)
	}
	return r.renderCode(text, rel)
}

func (r *Renderer) renderMarkdown(text string) string {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(text), &buf); err != nil {
		return errorNotice(err)
	}
	return buf.String()
}

func (r *Renderer) renderCode(text, rel string) string {
	lexer := lexers.Match(path.Base(rel))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return errorNotice(err)
	}
	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, r.style, iterator); err != nil {
		return errorNotice(err)
	}
	return fmt.Sprintf("<div class=\"highlight\">%s</div>", buf.String())
}

// StyleCSS returns the stylesheet for the highlighted fragments, embedded in
// the document head.
func (r *Renderer) StyleCSS() string {
	var buf bytes.Buffer
	if err := r.formatter.WriteCSS(&buf, r.style); err != nil {
		return ""
	}
	return buf.String()
}

func errorNotice(err error) string {
	return fmt.Sprintf("<pre class=\"error\">Failed to render: %s</pre>", html.EscapeString(err.Error()))
}

// StyleNames lists the available highlight styles.
func StyleNames() []string {
	return styles.Names()
}
