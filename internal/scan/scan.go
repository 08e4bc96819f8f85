// Package scan walks a repository checkout and produces the manifest: one
// classified record per regular file, in lexicographic path order.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/fernwick/repolens/internal/classify"
	"github.com/fernwick/repolens/internal/log"
	"github.com/fernwick/repolens/internal/models"
)

// Scan enumerates every regular file under root and classifies it. Symlinks
// and directories are skipped, so cycles and double-counting cannot occur.
// An unreadable subtree is logged and skipped; only a failure on root itself
// aborts the scan. The returned order is lexicographic on the slash-normalized
// relative path and is the canonical order later used for export.
func Scan(ctx context.Context, root string, policy classify.Policy) ([]*models.FileRecord, error) {
	type entry struct {
		abs string
		rel string
	}
	var entries []entry

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return walkError(root, p, d, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() || d.Type()&fs.ModeSymlink != 0 || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("computing relative path for %s: %w", p, err)
		}
		entries = append(entries, entry{abs: p, rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].rel < entries[j].rel
	})

	records := make([]*models.FileRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, classify.Decide(e.abs, e.rel, policy))
	}
	return records, nil
}

// walkError decides what a walk callback error costs: a failure on the root
// itself aborts the scan, anything below it only loses that entry or subtree.
func walkError(root, p string, d fs.DirEntry, err error) error {
	if p == root {
		return err
	}
	log.Printf("skipping %s: %v", p, err)
	if d != nil && d.IsDir() {
		return fs.SkipDir
	}
	return nil
}

// Included filters the manifest down to the renderable records, preserving
// manifest order.
func Included(records []*models.FileRecord) []*models.FileRecord {
	out := make([]*models.FileRecord, 0, len(records))
	for _, rec := range records {
		if rec.Verdict.Included() {
			out = append(out, rec)
		}
	}
	return out
}

// ByVerdict groups the manifest by verdict, preserving manifest order within
// each group. Used for the skipped-file lists in the document.
func ByVerdict(records []*models.FileRecord) map[models.Verdict][]*models.FileRecord {
	out := make(map[models.Verdict][]*models.FileRecord)
	for _, rec := range records {
		out[rec.Verdict] = append(out[rec.Verdict], rec)
	}
	return out
}

// TotalSize sums the byte sizes of the given records.
func TotalSize(records []*models.FileRecord) int64 {
	var total int64
	for _, rec := range records {
		total += rec.Size
	}
	return total
}
