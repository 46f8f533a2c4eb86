package cargo

import "strings"

// CommandError indicates the cargo process could not be started or run at
// all (binary missing, permission denied, context cancelled).
type CommandError struct {
	// Err is the underlying execution error.
	Err error
}

func (e *CommandError) Error() string {
	return "failed to execute `cargo metadata`: " + e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitError indicates `cargo metadata` ran but exited with a non-zero
// status. Stderr carries the diagnostic text cargo printed.
type ExitError struct {
	// Stderr is the captured standard error output, verbatim.
	Stderr []byte
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(string(e.Stderr))
	if msg == "" {
		return "`cargo metadata` was not successful"
	}
	return "`cargo metadata` was not successful: " + msg
}

// InvalidUTF8Error indicates the `cargo metadata` output was not valid
// UTF-8 and cannot be decoded.
type InvalidUTF8Error struct{}

func (e *InvalidUTF8Error) Error() string {
	return "`cargo metadata` output is not valid UTF-8"
}

// ParseError indicates the `cargo metadata` output could not be decoded as
// a metadata payload.
type ParseError struct {
	// Err is the underlying decode error.
	Err error
}

func (e *ParseError) Error() string {
	return "failed to parse `cargo metadata` output: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
