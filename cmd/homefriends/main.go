// Package main provides the homefriends CLI, a small tool managing the
// Children, Pets, and Owners tables of the adoption registry.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/homefriends/pkg/types"
)

// Exit codes.
const (
	exitSuccess  = 0
	exitUserErr  = 1
	exitSysError = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps adapter-level I/O failures to the system error code;
// everything else (bad input, not found, conflicts) is a user error.
func exitCode(err error) int {
	if errors.Is(err, types.ErrTableUnavailable) ||
		errors.Is(err, types.ErrWriteRejected) ||
		errors.Is(err, types.ErrIndexOutOfRange) {
		return exitSysError
	}
	return exitUserErr
}
