// Package metadata models the project dependency graph produced by
// `cargo metadata --format-version 1`.
//
// The graph has two halves that describe the same set of packages:
//
//   - Packages carry identity (id, name, manifest path) and the dependency
//     declarations written in each manifest, including renames.
//   - Resolve nodes record the outcome of dependency resolution: for each
//     package, the concrete package ids its dependencies resolved to and the
//     feature flags that were activated on each edge.
//
// Neither half is complete on its own. Declarations know about renames but
// not about resolution outcomes; resolve nodes know the activated features
// but not the local names a package uses for its dependencies. Queries that
// need both (such as locating a renamed dependency's manifest) join the two
// halves through package ids.
//
// A Graph is decoded once from a metadata payload, used read-only, and
// discarded. All query methods are safe for concurrent use.
package metadata
