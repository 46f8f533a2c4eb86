package bootlocator

import "errors"

// Sentinel errors for the lookup failure kinds. The rich error types below
// match these through errors.Is, so callers can branch on the kind without
// unpacking the details.
var (
	// ErrCallerNotFound indicates the caller's manifest path does not
	// correspond to any package in the metadata graph.
	ErrCallerNotFound = errors.New("caller package not found in metadata")

	// ErrNotDeclared indicates the caller declares no dependency with
	// the requested name or rename. This is an expected outcome when
	// the dependency is simply not used, not a data-integrity problem.
	ErrNotDeclared = errors.New("dependency not declared")

	// ErrIncompleteGraph indicates the metadata graph is missing an
	// expected cross-reference: truncated, internally inconsistent, or
	// from an incompatible format version.
	ErrIncompleteGraph = errors.New("metadata graph is incomplete")
)

// CallerNotFoundError reports that the supplied manifest path matched no
// package in the graph. It usually means the manifest locator and the
// metadata provider disagree about which project is current.
type CallerNotFoundError struct {
	// ManifestPath is the path that failed to match.
	ManifestPath string
}

func (e *CallerNotFoundError) Error() string {
	return "no package with manifest path " + e.ManifestPath + " in metadata"
}

func (e *CallerNotFoundError) Is(target error) bool { return target == ErrCallerNotFound }

// NotDeclaredError reports that the caller package declares no dependency
// matching the requested name, either directly or through a rename.
type NotDeclaredError struct {
	// Caller is the name of the package whose declarations were scanned.
	Caller string

	// Dependency is the name that was looked for.
	Dependency string
}

func (e *NotDeclaredError) Error() string {
	return "package " + e.Caller + " declares no dependency named " + e.Dependency
}

func (e *NotDeclaredError) Is(target error) bool { return target == ErrNotDeclared }

// IncompleteGraphError reports a missing cross-reference in the resolved
// metadata graph. The lookup never defaults around a missing reference:
// the graph is either consistent or the call fails.
type IncompleteGraphError struct {
	// Missing names the reference that could not be found.
	Missing string

	// Err carries the underlying integrity error when one exists.
	Err error
}

func (e *IncompleteGraphError) Error() string {
	msg := "incomplete metadata graph: missing " + e.Missing
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IncompleteGraphError) Is(target error) bool { return target == ErrIncompleteGraph }

func (e *IncompleteGraphError) Unwrap() error { return e.Err }
