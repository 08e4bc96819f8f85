// Package tree derives the folder/file hierarchy shown in the selector from
// the flat manifest.
package tree

import (
	"path"
	"sort"

	"github.com/fernwick/repolens/internal/models"
)

// Build groups the manifest's included records into a folder hierarchy rooted
// at a synthetic node. Folder nodes are created lazily through a path-keyed
// index in a single pass, so a folder exists exactly when it has at least one
// included descendant. The result is deterministic for a given record set.
func Build(records []*models.FileRecord) *models.FolderNode {
	root := &models.FolderNode{}
	index := map[string]*models.FolderNode{"": root}

	for _, rec := range records {
		if !rec.Verdict.Included() {
			continue
		}
		parent := folderFor(index, parentDir(rec.Rel))
		parent.Files = append(parent.Files, rec)
	}

	sortNode(root)
	return root
}

// folderFor returns the node for dir, creating it and any missing ancestors.
func folderFor(index map[string]*models.FolderNode, dir string) *models.FolderNode {
	if node, ok := index[dir]; ok {
		return node
	}
	parent := folderFor(index, parentDir(dir))
	node := &models.FolderNode{Path: dir, Name: path.Base(dir)}
	parent.Folders = append(parent.Folders, node)
	index[dir] = node
	return node
}

// parentDir returns the containing directory of a slash path, "" at the root.
func parentDir(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

// sortNode orders children recursively: subfolders before files, each group
// alphabetical, case-sensitive.
func sortNode(node *models.FolderNode) {
	sort.SliceStable(node.Folders, func(i, j int) bool {
		return node.Folders[i].Name < node.Folders[j].Name
	})
	sort.SliceStable(node.Files, func(i, j int) bool {
		return path.Base(node.Files[i].Rel) < path.Base(node.Files[j].Rel)
	})
	for _, child := range node.Folders {
		sortNode(child)
	}
}

// Walk visits every node depth-first, folders before their files, invoking
// fn with the node's depth. The root itself is not visited.
func Walk(root *models.FolderNode, fn func(folder *models.FolderNode, file *models.FileRecord, depth int)) {
	var visit func(node *models.FolderNode, depth int)
	visit = func(node *models.FolderNode, depth int) {
		for _, sub := range node.Folders {
			fn(sub, nil, depth)
			visit(sub, depth+1)
		}
		for _, file := range node.Files {
			fn(nil, file, depth)
		}
	}
	visit(root, 0)
}
