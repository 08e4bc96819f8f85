package render

import (
	"context"
	"html"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/fernwick/repolens/internal/models"
)

// poolLimit bounds concurrent file rendering.
func poolLimit() int {
	limit := runtime.NumCPU() * 2
	if limit < 4 {
		limit = 4
	}
	if limit > 32 {
		limit = 32
	}
	return limit
}

// forEachIncluded runs fn over every included record on a bounded worker
// pool and waits for all of them. Each record is touched by exactly one
// goroutine, so no further synchronization is needed; the wait is the
// barrier before document emission.
func forEachIncluded(ctx context.Context, records []*models.FileRecord, fn func(*models.FileRecord)) {
	limit := poolLimit()
	// Counting semaphore: the channel starts full, workers take a token
	// before rendering and return it after.
	semaphore := make(chan struct{}, limit)
	for i := 0; i < limit; i++ {
		semaphore <- struct{}{}
	}

	var wg sync.WaitGroup
	for _, rec := range records {
		if !rec.Verdict.Included() {
			continue
		}
		wg.Add(1)
		go func(rec *models.FileRecord) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			case <-semaphore:
			}
			defer func() { semaphore <- struct{}{} }()
			fn(rec)
		}(rec)
	}
	wg.Wait()
}

// LoadAll fills in the decoded text of every included record. Invalid byte
// sequences are replaced rather than rejected; a read failure leaves an
// empty text and is surfaced per file at render time.
func LoadAll(ctx context.Context, records []*models.FileRecord) {
	forEachIncluded(ctx, records, func(rec *models.FileRecord) {
		loadText(rec)
	})
}

// RenderAll fills in both the decoded text and the rendered HTML body of
// every included record.
func (r *Renderer) RenderAll(ctx context.Context, records []*models.FileRecord) {
	forEachIncluded(ctx, records, func(rec *models.FileRecord) {
		if !loadText(rec) {
			rec.Body = unreadableNotice(rec.Rel)
			return
		}
		rec.Body = r.Render(rec.Text, rec.Rel)
	})
}

// loadText reads and decodes one record's content, reporting success.
func loadText(rec *models.FileRecord) bool {
	data, err := os.ReadFile(rec.Path) // #nosec G304 -- path comes from walking the acquired checkout
	if err != nil {
		rec.Text = ""
		return false
	}
	rec.Text = strings.ToValidUTF8(string(data), "�")
	return true
}

func unreadableNotice(rel string) string {
	return "<pre class=\"error\">Failed to read: " + html.EscapeString(rel) + "</pre>"
}
