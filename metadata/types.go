package metadata

// Graph is a project dependency graph as reported by `cargo metadata`.
// It contains every package that participates in the build, the dependency
// declarations from their manifests, and the resolved dependency tree.
type Graph struct {
	// Packages lists all packages in the graph, including the project
	// itself and every transitive dependency.
	Packages []Package `json:"packages"`

	// Resolve is the resolved dependency tree. It is nil when metadata
	// was produced without resolution (for example with --no-deps).
	Resolve *Resolve `json:"resolve"`

	packagesByID map[string]*Package
	nodesByID    map[string]*ResolveNode
}

// Package is one package in the graph together with its declared
// dependencies.
type Package struct {
	// ID is the opaque unique identifier cargo assigns to this package.
	// It is distinct from the package name: two versions of the same
	// package share a name but never an id.
	ID string `json:"id"`

	// Name is the published package name.
	Name string `json:"name"`

	// Version is the package version string.
	Version string `json:"version"`

	// ManifestPath is the absolute path of the package's Cargo.toml.
	ManifestPath string `json:"manifest_path"`

	// Dependencies are the dependency declarations from the manifest,
	// in declaration order.
	Dependencies []Dependency `json:"dependencies"`
}

// Dependency is a single dependency declaration in a package manifest.
// It names the target package but is not yet resolved to a package id.
type Dependency struct {
	// Name is the published name of the package being depended on.
	Name string `json:"name"`

	// Rename is the local alias the depending package imports the
	// dependency under, or empty when the dependency is not renamed.
	Rename string `json:"rename,omitempty"`
}

// LocalName returns the name under which the depending package refers to
// this dependency: the rename when one is declared, the package name
// otherwise.
func (d *Dependency) LocalName() string {
	if d.Rename != "" {
		return d.Rename
	}
	return d.Name
}

// Resolve is the resolved dependency tree: one node per package that
// participates in resolution, plus the id of the root package.
type Resolve struct {
	// Nodes holds one entry per resolved package.
	Nodes []ResolveNode `json:"nodes"`

	// Root is the package id of the project being built.
	Root string `json:"root"`
}

// ResolveNode records how dependency resolution concluded for one package.
type ResolveNode struct {
	// ID is the package id this node belongs to.
	ID string `json:"id"`

	// Deps are the package's dependencies resolved to concrete package
	// ids, each annotated with the features activated on that edge.
	Deps []ResolveDep `json:"deps"`
}

// ResolveDep is one resolved dependency edge.
type ResolveDep struct {
	// Name is the target package's name.
	Name string `json:"name"`

	// Pkg is the target package's id.
	Pkg string `json:"pkg"`

	// Features are the feature flags that were activated for this edge
	// when the whole graph's feature requirements were resolved.
	Features []string `json:"features,omitempty"`
}
