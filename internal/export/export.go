// Package export serializes the current selection into the CXML document
// bundle consumed by language models.
package export

import (
	"strconv"
	"strings"

	"github.com/fernwick/repolens/internal/models"
	"github.com/fernwick/repolens/internal/selection"
)

// Document wraps the given records into a CXML bundle. Indexes are 1-based
// and follow the order of records, which callers pass in manifest order.
// File content is embedded verbatim; the wrapper tags are the only structure
// added. The same records always serialize to the same bytes.
func Document(records []*models.FileRecord) string {
	var b strings.Builder
	b.WriteString("<documents>\n")
	for i, rec := range records {
		b.WriteString("<document index=\"")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("\">\n<source>")
		b.WriteString(rec.Rel)
		b.WriteString("</source>\n<document_content>\n")
		b.WriteString(rec.Text)
		b.WriteString("\n</document_content>\n</document>\n")
	}
	b.WriteString("</documents>")
	return b.String()
}

// FromSelection serializes whatever the model currently has selected.
func FromSelection(m *selection.Model) string {
	return Document(m.Selected())
}
