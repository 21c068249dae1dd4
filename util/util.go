package util

import (
	"os"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timepart/datefmt"
)

const (
	// Success indicates the command completed.
	Success = iota
	// ErrLocalExe indicates an error running the command, e.g. a bad config.
	ErrLocalExe
	// ErrLocalParse indicates the command's arguments could not be parsed.
	ErrLocalParse
	// ErrNoMatch indicates a label does not match the configured template.
	ErrNoMatch
)

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Cause(err) == datefmt.ErrNoMatch:
		return ErrNoMatch
	default:
		return ErrLocalExe
	}
}

// ExitOnError prints err and exits with its code. It returns if err is nil.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	jww.ERROR.Println(err)
	os.Exit(ExitCode(err))
}
