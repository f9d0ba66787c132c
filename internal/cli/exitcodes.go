// Package cli provides shared utilities for the typelint CLI.
package cli

// Standard exit codes for the typelint CLI.
//
// These follow Unix conventions:
//   - 0: Success
//   - 1: General error (decode failures, runtime errors, etc.)
//   - 2: Warnings or check failures (lint warnings without errors)
const (
	// ExitOK indicates successful execution with no issues.
	ExitOK = 0

	// ExitError indicates a fatal error occurred (decode error, I/O
	// error, configuration error) or that findings at error severity
	// were reported.
	ExitError = 1

	// ExitWarning indicates the tool completed but found warnings that
	// don't constitute errors.
	ExitWarning = 2
)
