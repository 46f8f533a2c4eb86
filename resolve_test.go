package bootlocator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/phil-opp/bootloader-locator/metadata"
)

// testGraph builds the fixture graph used across the resolver tests:
//
//	A (root, /p/A/Cargo.toml)
//	├── boot_impl renamed to "bootloader" (/p/boot/Cargo.toml), features {vga, serial}
//	└── serde (/p/serde/Cargo.toml), features {derive}
func testGraph(t *testing.T) *metadata.Graph {
	t.Helper()
	g, err := metadata.New(testPackages(), testResolve())
	if err != nil {
		t.Fatalf("build test graph: %v", err)
	}
	return g
}

func testPackages() []metadata.Package {
	return []metadata.Package{
		{
			ID:           "A 0.1.0 (path+file:///p/A)",
			Name:         "A",
			Version:      "0.1.0",
			ManifestPath: "/p/A/Cargo.toml",
			Dependencies: []metadata.Dependency{
				{Name: "boot_impl", Rename: "bootloader"},
				{Name: "serde"},
			},
		},
		{
			ID:           "boot_impl 0.2.0 (path+file:///p/boot)",
			Name:         "boot_impl",
			Version:      "0.2.0",
			ManifestPath: "/p/boot/Cargo.toml",
		},
		{
			ID:           "serde 1.0.0 (registry+https://example.com)",
			Name:         "serde",
			Version:      "1.0.0",
			ManifestPath: "/p/serde/Cargo.toml",
		},
	}
}

func testResolve() *metadata.Resolve {
	return &metadata.Resolve{
		Root: "A 0.1.0 (path+file:///p/A)",
		Nodes: []metadata.ResolveNode{
			{
				ID: "A 0.1.0 (path+file:///p/A)",
				Deps: []metadata.ResolveDep{
					{
						Name:     "boot_impl",
						Pkg:      "boot_impl 0.2.0 (path+file:///p/boot)",
						Features: []string{"vga", "serial"},
					},
					{
						Name:     "serde",
						Pkg:      "serde 1.0.0 (registry+https://example.com)",
						Features: []string{"derive"},
					},
				},
			},
			{ID: "boot_impl 0.2.0 (path+file:///p/boot)"},
			{ID: "serde 1.0.0 (registry+https://example.com)"},
		},
	}
}

func TestResolve_RenamedDependency(t *testing.T) {
	g := testGraph(t)

	dep, err := Resolve(g, "/p/A/Cargo.toml", "bootloader")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if dep.ManifestPath != "/p/boot/Cargo.toml" {
		t.Errorf("ManifestPath = %q, want %q", dep.ManifestPath, "/p/boot/Cargo.toml")
	}
	if want := []string{"vga", "serial"}; !reflect.DeepEqual(dep.Features, want) {
		t.Errorf("Features = %v, want %v", dep.Features, want)
	}
}

func TestResolve_DirectName(t *testing.T) {
	g := testGraph(t)

	dep, err := Resolve(g, "/p/A/Cargo.toml", "serde")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if dep.ManifestPath != "/p/serde/Cargo.toml" {
		t.Errorf("ManifestPath = %q, want %q", dep.ManifestPath, "/p/serde/Cargo.toml")
	}
	if want := []string{"derive"}; !reflect.DeepEqual(dep.Features, want) {
		t.Errorf("Features = %v, want %v", dep.Features, want)
	}
}

// A renamed dependency is only reachable under its rename: the published
// name does not match once a rename is declared.
func TestResolve_RenameShadowsPublishedName(t *testing.T) {
	g := testGraph(t)

	_, err := Resolve(g, "/p/A/Cargo.toml", "boot_impl")
	if !errors.Is(err, ErrNotDeclared) {
		t.Fatalf("Resolve() error = %v, want ErrNotDeclared", err)
	}
}

func TestResolve_CallerNotFound(t *testing.T) {
	g := testGraph(t)

	_, err := Resolve(g, "/elsewhere/Cargo.toml", "bootloader")
	if !errors.Is(err, ErrCallerNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrCallerNotFound", err)
	}

	var notFound *CallerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Resolve() error = %T, want *CallerNotFoundError", err)
	}
	if notFound.ManifestPath != "/elsewhere/Cargo.toml" {
		t.Errorf("ManifestPath = %q, want %q", notFound.ManifestPath, "/elsewhere/Cargo.toml")
	}
}

func TestResolve_NotDeclared(t *testing.T) {
	g := testGraph(t)

	_, err := Resolve(g, "/p/A/Cargo.toml", "missing")
	if !errors.Is(err, ErrNotDeclared) {
		t.Fatalf("Resolve() error = %v, want ErrNotDeclared", err)
	}

	var notDeclared *NotDeclaredError
	if !errors.As(err, &notDeclared) {
		t.Fatalf("Resolve() error = %T, want *NotDeclaredError", err)
	}
	if notDeclared.Caller != "A" || notDeclared.Dependency != "missing" {
		t.Errorf("NotDeclaredError = %+v, want caller A, dependency missing", notDeclared)
	}
}

func TestResolve_IncompleteGraph(t *testing.T) {
	tests := []struct {
		name        string
		resolve     *metadata.Resolve
		wantMissing string
	}{
		{
			name: "no resolve node for caller",
			resolve: &metadata.Resolve{
				Root:  "A 0.1.0 (path+file:///p/A)",
				Nodes: []metadata.ResolveNode{{ID: "boot_impl 0.2.0 (path+file:///p/boot)"}},
			},
			wantMissing: "resolve node for caller",
		},
		{
			name: "no resolved edge for target dependency",
			resolve: &metadata.Resolve{
				Root:  "A 0.1.0 (path+file:///p/A)",
				Nodes: []metadata.ResolveNode{{ID: "A 0.1.0 (path+file:///p/A)"}},
			},
			wantMissing: "resolved edge for target dependency",
		},
		{
			name: "no package for resolved id",
			resolve: &metadata.Resolve{
				Root: "A 0.1.0 (path+file:///p/A)",
				Nodes: []metadata.ResolveNode{
					{
						ID: "A 0.1.0 (path+file:///p/A)",
						Deps: []metadata.ResolveDep{
							{Name: "boot_impl", Pkg: "boot_impl 9.9.9 (gone)", Features: []string{"vga"}},
						},
					},
				},
			},
			wantMissing: "package for resolved id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := metadata.New(testPackages(), tt.resolve)
			if err != nil {
				t.Fatalf("build graph: %v", err)
			}

			_, err = Resolve(g, "/p/A/Cargo.toml", "bootloader")
			if !errors.Is(err, ErrIncompleteGraph) {
				t.Fatalf("Resolve() error = %v, want ErrIncompleteGraph", err)
			}
			if errors.Is(err, ErrCallerNotFound) || errors.Is(err, ErrNotDeclared) {
				t.Fatalf("Resolve() error = %v matches another failure kind", err)
			}

			var incomplete *IncompleteGraphError
			if !errors.As(err, &incomplete) {
				t.Fatalf("Resolve() error = %T, want *IncompleteGraphError", err)
			}
			if incomplete.Missing != tt.wantMissing {
				t.Errorf("Missing = %q, want %q", incomplete.Missing, tt.wantMissing)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	g := testGraph(t)

	first, err := Resolve(g, "/p/A/Cargo.toml", "bootloader")
	if err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}
	second, err := Resolve(g, "/p/A/Cargo.toml", "bootloader")
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: first %+v, second %+v", first, second)
	}

	// The lookup must not have mutated the graph.
	if want := testGraph(t); !reflect.DeepEqual(g.Packages, want.Packages) || !reflect.DeepEqual(g.Resolve, want.Resolve) {
		t.Error("graph mutated by Resolve")
	}
}
