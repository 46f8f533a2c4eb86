package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed indicates the metadata payload violated a structural
// invariant of the graph: a duplicate id, a dangling cross-reference, or a
// missing resolve section.
var ErrMalformed = errors.New("malformed metadata graph")

// Parse decodes a `cargo metadata --format-version 1` payload into a Graph
// and builds its id indexes. Parse does not check cross-reference
// integrity; call Validate for that.
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if err := g.index(); err != nil {
		return nil, err
	}
	return &g, nil
}

// New constructs an indexed Graph from already-materialized parts. It is
// the entry point for callers that obtain graph data from somewhere other
// than a serialized metadata payload, such as tests. Like Parse, it
// rejects duplicate ids but leaves cross-reference checking to Validate.
func New(packages []Package, resolve *Resolve) (*Graph, error) {
	g := &Graph{Packages: packages, Resolve: resolve}
	if err := g.index(); err != nil {
		return nil, err
	}
	return g, nil
}

// index builds the id-keyed lookup maps. Duplicate ids are malformed: the
// indexes would silently shadow one of the entries.
func (g *Graph) index() error {
	g.packagesByID = make(map[string]*Package, len(g.Packages))
	for i := range g.Packages {
		p := &g.Packages[i]
		if _, dup := g.packagesByID[p.ID]; dup {
			return fmt.Errorf("%w: duplicate package id %q", ErrMalformed, p.ID)
		}
		g.packagesByID[p.ID] = p
	}

	if g.Resolve == nil {
		return nil
	}
	g.nodesByID = make(map[string]*ResolveNode, len(g.Resolve.Nodes))
	for i := range g.Resolve.Nodes {
		n := &g.Resolve.Nodes[i]
		if _, dup := g.nodesByID[n.ID]; dup {
			return fmt.Errorf("%w: duplicate resolve node id %q", ErrMalformed, n.ID)
		}
		g.nodesByID[n.ID] = n
	}
	return nil
}

// Validate checks the graph's cross-reference integrity:
//
//   - a resolve section must be present,
//   - the root id must name a package and a resolve node,
//   - every id referenced by a resolve node or resolved edge must name a
//     package.
//
// All violations are reported as ErrMalformed with the offending reference
// in the message.
func (g *Graph) Validate() error {
	if g.Resolve == nil {
		return fmt.Errorf("%w: no resolve section", ErrMalformed)
	}
	if g.Resolve.Root == "" {
		return fmt.Errorf("%w: no root package id", ErrMalformed)
	}
	if g.Package(g.Resolve.Root) == nil {
		return fmt.Errorf("%w: root id %q names no package", ErrMalformed, g.Resolve.Root)
	}
	if g.Node(g.Resolve.Root) == nil {
		return fmt.Errorf("%w: root id %q has no resolve node", ErrMalformed, g.Resolve.Root)
	}
	for i := range g.Resolve.Nodes {
		n := &g.Resolve.Nodes[i]
		if g.Package(n.ID) == nil {
			return fmt.Errorf("%w: resolve node id %q names no package", ErrMalformed, n.ID)
		}
		for _, dep := range n.Deps {
			if g.Package(dep.Pkg) == nil {
				return fmt.Errorf("%w: resolved edge %q -> %q names no package", ErrMalformed, n.ID, dep.Pkg)
			}
		}
	}
	return nil
}
