package metadata

// Package returns the package with the given id, or nil if not found.
// Id lookups are exact: ids are unique within a graph.
func (g *Graph) Package(id string) *Package {
	return g.packagesByID[id]
}

// Node returns the resolve node for the given package id, or nil if the
// package does not participate in resolution.
func (g *Graph) Node(id string) *ResolveNode {
	return g.nodesByID[id]
}

// PackageByManifestPath returns the package whose manifest path equals
// path, or nil if not found.
func (g *Graph) PackageByManifestPath(path string) *Package {
	for i := range g.Packages {
		if g.Packages[i].ManifestPath == path {
			return &g.Packages[i]
		}
	}
	return nil
}

// PackagesByName returns all packages with the given name. Unlike ids,
// names are not unique: a graph may contain several versions of the same
// package, so name lookups can be ambiguous.
func (g *Graph) PackagesByName(name string) []*Package {
	var matches []*Package
	for i := range g.Packages {
		if g.Packages[i].Name == name {
			matches = append(matches, &g.Packages[i])
		}
	}
	return matches
}

// RootPackage returns the root package of the graph, or nil when the graph
// has no resolve section or the root id is dangling.
func (g *Graph) RootPackage() *Package {
	if g.Resolve == nil {
		return nil
	}
	return g.Package(g.Resolve.Root)
}

// RootNode returns the resolve node of the root package, or nil when the
// graph has no resolve section or the root node is missing.
func (g *Graph) RootNode() *ResolveNode {
	if g.Resolve == nil {
		return nil
	}
	return g.Node(g.Resolve.Root)
}

// Dependency returns the first dependency declaration whose local name
// (rename when present, package name otherwise) equals name. Declarations
// are scanned in declaration order; nil when no declaration matches.
func (p *Package) Dependency(name string) *Dependency {
	for i := range p.Dependencies {
		if p.Dependencies[i].LocalName() == name {
			return &p.Dependencies[i]
		}
	}
	return nil
}

// Dep returns the first resolved edge whose target package name equals
// name, or nil when the node has no such edge.
func (n *ResolveNode) Dep(name string) *ResolveDep {
	for i := range n.Deps {
		if n.Deps[i].Name == name {
			return &n.Deps[i]
		}
	}
	return nil
}
