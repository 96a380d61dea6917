package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rmagsino/pollscore/internal/dataset"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Run completed
	ExitDataError = 1 // Malformed source data or failed data checks
	ExitError     = 2 // Configuration or runtime error
)

// CheckFailureError indicates that the run itself succeeded, but the data
// checks found problems in the raw source files.
type CheckFailureError struct {
	Message string
}

func (e *CheckFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var checkErr *CheckFailureError
		var rowErr *dataset.RowError
		if errors.As(err, &checkErr) || errors.As(err, &rowErr) {
			os.Exit(ExitDataError)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
