package bootlocator

import (
	"github.com/phil-opp/bootloader-locator/cargo"
	"github.com/phil-opp/bootloader-locator/manifest"
)

// Options configures a Locate call. The zero value locates the manifest
// from the working directory and runs the cargo binary from the
// environment.
type Options struct {
	// ManifestPath is an explicit project manifest path. When set, the
	// manifest locator is not consulted.
	ManifestPath string

	// Dir is the directory the manifest locator starts walking from.
	// Empty means the current working directory. Ignored when
	// ManifestPath is set.
	Dir string

	// Cargo overrides the cargo binary invoked by the default metadata
	// provider. Empty means $CARGO, then "cargo" on PATH. Ignored when
	// Provider is set.
	Cargo string

	// Env is extra environment for the default metadata provider's
	// cargo invocation. Ignored when Provider is set.
	Env []string

	// Provider replaces the metadata provider. Nil means `cargo
	// metadata` via cargo.Command.
	Provider MetadataProvider

	// Locator replaces the manifest locator. Nil means walking ancestor
	// directories via manifest.Walker.
	Locator ManifestLocator
}

func (o Options) provider() MetadataProvider {
	if o.Provider != nil {
		return o.Provider
	}
	return &cargo.Command{Cargo: o.Cargo, Env: o.Env}
}

func (o Options) locator() ManifestLocator {
	if o.Locator != nil {
		return o.Locator
	}
	return manifest.Walker{}
}
