package tui

import (
	"path"

	"seedrepo.dev/seedrepo/internal/structure"
	"seedrepo.dev/seedrepo/internal/tui/style"
)

type planNode struct {
	name     string
	kind     structure.Kind
	children []*planNode
}

// RenderPlan draws a plan as an indented tree rooted at root, one line per path.
// Directories carry a trailing slash.
func RenderPlan(root string, plan []structure.PlannedPath) []string {
	top := &planNode{name: root, kind: structure.KindDir}
	index := map[string]*planNode{".": top}

	for _, p := range plan {
		parent, ok := index[path.Dir(p.Path)]
		if !ok {
			parent = top
		}
		node := &planNode{name: path.Base(p.Path), kind: p.Kind}
		parent.children = append(parent.children, node)
		index[p.Path] = node
	}

	glyphs := style.Glyphs()
	lines := []string{style.ColorDir(root)}
	var walk func(n *planNode, prefix string)
	walk = func(n *planNode, prefix string) {
		for i, child := range n.children {
			connector, indent := glyphs.Branch, glyphs.Pipe
			if i == len(n.children)-1 {
				connector, indent = glyphs.Last, glyphs.Blank
			}
			lines = append(lines, style.ColorDim(prefix+connector)+renderName(child))
			walk(child, prefix+indent)
		}
	}
	walk(top, "")
	return lines
}

func renderName(n *planNode) string {
	if n.kind == structure.KindDir {
		return style.ColorDir(n.name + "/")
	}
	return n.name
}
