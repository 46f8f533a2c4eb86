// Package cargo queries project metadata by invoking the `cargo metadata`
// subcommand and decoding its JSON output.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/phil-opp/bootloader-locator/metadata"
)

// FormatVersion is the `cargo metadata` output format this package
// understands.
const FormatVersion = "1"

// Command produces dependency graphs by running `cargo metadata`.
// The zero value is ready to use and runs the cargo binary named by the
// CARGO environment variable, falling back to "cargo" on PATH.
type Command struct {
	// Cargo overrides the cargo binary to invoke. Empty means $CARGO,
	// then "cargo".
	Cargo string

	// Env is extra environment appended to the parent process
	// environment for the cargo invocation.
	Env []string
}

// Metadata runs `cargo metadata --format-version 1 --manifest-path
// manifestPath` and decodes the output into a Graph.
//
// Failures are typed: CommandError when the process could not be run,
// ExitError (with captured stderr) on a non-zero exit status,
// InvalidUTF8Error when the output is not valid UTF-8, and ParseError when
// the output does not decode as a metadata payload. The context cancels
// the cargo process when it expires.
func (c *Command) Metadata(ctx context.Context, manifestPath string) (*metadata.Graph, error) {
	cmd := exec.CommandContext(ctx, c.binary(),
		"metadata",
		"--format-version", FormatVersion,
		"--manifest-path", manifestPath,
	)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{Stderr: stderr.Bytes()}
		}
		return nil, &CommandError{Err: err}
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return nil, &InvalidUTF8Error{}
	}

	g, err := metadata.Parse(out)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return g, nil
}

func (c *Command) binary() string {
	if c.Cargo != "" {
		return c.Cargo
	}
	if env := os.Getenv("CARGO"); env != "" {
		return env
	}
	return "cargo"
}
