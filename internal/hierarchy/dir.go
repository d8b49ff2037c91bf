package hierarchy

import (
	"os"
	"path/filepath"
)

// Dir is a hierarchy backed by a real directory tree. Directories are
// internal nodes, files are leaves. Paths that do not exist or are not
// directories yield empty child lists rather than errors.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) Separator() string {
	return string(filepath.Separator)
}

func (d *Dir) Subtree(path []string) []Node {
	entries, err := os.ReadDir(d.join(path))
	if err != nil {
		return nil
	}
	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, Node{Label: entry.Name(), Internal: entry.IsDir()})
	}
	return nodes
}

func (d *Dir) PartialPath(path []string) (matched, rest []string) {
	for i := range path {
		info, err := os.Stat(d.join(path[:i+1]))
		if err != nil || !info.IsDir() {
			return path[:i], path[i:]
		}
	}
	return path, nil
}

func (d *Dir) join(path []string) string {
	return filepath.Join(append([]string{d.root}, path...)...)
}
