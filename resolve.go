package bootlocator

import "github.com/phil-opp/bootloader-locator/metadata"

// ResolvedDependency is the outcome of a successful lookup: where the
// dependency's package lives on disk and which of its features dependency
// resolution activated.
type ResolvedDependency struct {
	// ManifestPath is the path of the dependency package's Cargo.toml.
	ManifestPath string

	// Features are the feature flags activated for the dependency when
	// the whole graph was resolved. Exactly the set recorded on the
	// resolved edge, in the order the metadata reports them.
	Features []string
}

// Resolve finds the package that provides dependencyName for the package
// whose manifest is at callerManifestPath.
//
// The lookup happens in two stages because neither half of the graph has
// the whole answer. The caller's dependency declarations carry the rename
// semantics needed to match an arbitrary local name to a package name, but
// only the resolved edges carry the feature-activation outcome, which
// depends on the whole graph rather than on the declaration alone. Resolve
// therefore matches the declaration first and then joins it against the
// caller's resolve node.
//
// Each failure is a distinct typed error: CallerNotFoundError when the
// manifest path matches no package, NotDeclaredError when the caller does
// not declare the dependency, and IncompleteGraphError when the resolved
// graph is missing a cross-reference the join needs. No partial result is
// ever returned.
//
// Resolve performs no I/O and does not mutate the graph; it is safe for
// concurrent use on a shared Graph and idempotent for the same inputs.
func Resolve(g *metadata.Graph, callerManifestPath, dependencyName string) (*ResolvedDependency, error) {
	caller := g.PackageByManifestPath(callerManifestPath)
	if caller == nil {
		return nil, &CallerNotFoundError{ManifestPath: callerManifestPath}
	}

	decl := caller.Dependency(dependencyName)
	if decl == nil {
		return nil, &NotDeclaredError{Caller: caller.Name, Dependency: dependencyName}
	}

	node := g.Node(caller.ID)
	if node == nil {
		return nil, &IncompleteGraphError{Missing: "resolve node for caller"}
	}

	edge := node.Dep(decl.Name)
	if edge == nil {
		return nil, &IncompleteGraphError{Missing: "resolved edge for target dependency"}
	}

	target := g.Package(edge.Pkg)
	if target == nil {
		return nil, &IncompleteGraphError{Missing: "package for resolved id"}
	}

	return &ResolvedDependency{
		ManifestPath: target.ManifestPath,
		Features:     edge.Features,
	}, nil
}
