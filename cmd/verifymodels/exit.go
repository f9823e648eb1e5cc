package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/verifymodels/internal/source"
)

// ErrVerificationFailed is returned when at least one identifier was not found.
// The FAIL line has already been printed when it is returned.
var ErrVerificationFailed = errors.New("verification failed")

// Exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitTableNotFound = 2
)

// exitCode maps the error returned by the root command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, source.ErrMappingTableNotFound):
		return exitTableNotFound
	default:
		return exitFailure
	}
}

// run executes the CLI with args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	code := exitCode(err)
	if code == exitFailure && !errors.Is(err, ErrVerificationFailed) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
