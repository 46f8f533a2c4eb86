// Package manifest locates and reads Cargo.toml manifest files.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Filename is the manifest file name cargo looks for.
const Filename = "Cargo.toml"

// ErrNoManifest indicates no Cargo.toml was found in the starting
// directory or any of its ancestors.
var ErrNoManifest = errors.New("no Cargo.toml found in current or any parent directory")

// Walker locates the nearest manifest by walking ancestor directories.
// The zero value is ready to use.
type Walker struct{}

// Locate walks from dir (the current working directory when empty) up
// through its ancestors and returns the absolute path of the first
// Cargo.toml found. It returns ErrNoManifest when the walk reaches the
// filesystem root without finding one.
func (Walker) Locate(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(dir, Filename)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.Mode().IsRegular():
			return candidate, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoManifest
		}
		dir = parent
	}
}

// Locate is shorthand for Walker{}.Locate.
func Locate(dir string) (string, error) {
	return Walker{}.Locate(dir)
}

// Manifest is the subset of a Cargo.toml this tool reads: the package
// identity. Workspace-root manifests without a [package] section decode
// with an empty Package.
type Manifest struct {
	Package struct {
		// Name is the package name.
		Name string `toml:"name"`

		// Version is the package version string.
		Version string `toml:"version"`
	} `toml:"package"`
}

// Read parses the manifest file at path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}
