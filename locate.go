// Package bootlocator locates the package that provides a named
// dependency of a project, typically the `bootloader` crate, on the file
// system.
//
// Build tooling often needs to build or invoke a companion package whose
// identity is not known statically: the project only declares it as a
// dependency, possibly under a rename. This package answers the question
// "where is that dependency's manifest, and which of its features did
// dependency resolution activate" by querying the project's metadata
// graph.
//
// # Quick start
//
//	// From the current working directory's project:
//	dep, err := bootlocator.Locate(ctx, "bootloader", bootlocator.Options{})
//
//	// With an explicit manifest:
//	dep, err := bootlocator.LocateAt(ctx, "bootloader", "/path/to/Cargo.toml")
//
// The heavy lifting is the pure graph query in Resolve; Locate only wires
// the two external collaborators (the manifest locator and the `cargo
// metadata` provider) in front of it. Both collaborators are interfaces
// and can be replaced through Options, which keeps embedders and tests
// independent of a real cargo binary and filesystem layout.
package bootlocator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/phil-opp/bootloader-locator/metadata"
)

// MetadataProvider produces the project dependency graph for a manifest.
// The production implementation is cargo.Command, which shells out to
// `cargo metadata`. Provider failures pass through Locate unchanged; they
// are never converted into lookup errors.
type MetadataProvider interface {
	Metadata(ctx context.Context, manifestPath string) (*metadata.Graph, error)
}

// ManifestLocator finds the manifest of the current project. The
// production implementation is manifest.Walker, which walks ancestor
// directories for the nearest Cargo.toml.
type ManifestLocator interface {
	Locate(dir string) (string, error)
}

// Locate finds the package providing dependencyName for the current
// project and returns its manifest path and activated features.
//
// The project manifest comes from opts.ManifestPath when set, otherwise
// from the manifest locator starting at opts.Dir (the working directory
// when empty). The metadata provider is then queried for the dependency
// graph, the graph's integrity is checked, and the lookup runs via
// Resolve.
func Locate(ctx context.Context, dependencyName string, opts Options) (*ResolvedDependency, error) {
	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		p, err := opts.locator().Locate(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("locate project manifest: %w", err)
		}
		manifestPath = p
	}

	// Metadata reports absolute manifest paths; the caller lookup in
	// Resolve compares paths literally.
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path %s: %w", manifestPath, err)
	}
	manifestPath = abs

	g, err := opts.provider().Metadata(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("query project metadata: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, &IncompleteGraphError{Missing: "consistent metadata graph", Err: err}
	}

	return Resolve(g, manifestPath, dependencyName)
}

// LocateAt is shorthand for Locate with an explicit manifest path.
func LocateAt(ctx context.Context, dependencyName, manifestPath string) (*ResolvedDependency, error) {
	return Locate(ctx, dependencyName, Options{ManifestPath: manifestPath})
}
