// Package main provides the rolodex CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/rolodex/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user errors (validation,
// lookups, argument mistakes) exit 1, everything else exits 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrRequiredField),
		errors.Is(err, types.ErrFieldFormat),
		errors.Is(err, types.ErrContactNotFound),
		errors.Is(err, types.ErrPhoneNotFound),
		errors.Is(err, types.ErrArgumentCount):
		return exitUserError
	default:
		return exitSysError
	}
}
