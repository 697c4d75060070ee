package structure

import "path"

// PlannedPath is a path Materialize will create, relative to the base path
// and slash separated.
type PlannedPath struct {
	Path string
	Kind Kind
}

// Plan lists every path Materialize creates for desc, in document order with
// parents before children. Intermediate directories implied by names that
// contain separators are included. Each path appears once.
func Plan(desc Description) []PlannedPath {
	p := &planner{seen: make(map[string]struct{})}
	p.walk("", desc)
	return p.paths
}

// Counts returns the number of files and directories in a plan
func Counts(plan []PlannedPath) (files, dirs int) {
	for _, pp := range plan {
		if pp.Kind == KindFile {
			files++
		} else {
			dirs++
		}
	}
	return files, dirs
}

type planner struct {
	paths []PlannedPath
	seen  map[string]struct{}
}

func (p *planner) add(rel string, kind Kind) {
	// parents first
	if dir := path.Dir(rel); dir != "." && dir != "/" {
		p.add(dir, KindDir)
	}
	if _, ok := p.seen[rel]; ok {
		return
	}
	p.seen[rel] = struct{}{}
	p.paths = append(p.paths, PlannedPath{Path: rel, Kind: kind})
}

func (p *planner) walk(base string, desc Description) {
	for _, node := range desc {
		rel := path.Clean(path.Join(base, node.Name))

		switch entry := node.Entry.(type) {
		case EmptyFile:
			p.add(rel, KindFile)
		case FileList:
			p.add(rel, KindDir)
			for _, name := range entry.Names {
				if name == "" {
					continue
				}
				p.add(path.Clean(path.Join(rel, name)), KindFile)
			}
		case Subdirectory:
			p.add(rel, KindDir)
			p.walk(rel, entry.Description)
		}
	}
}
