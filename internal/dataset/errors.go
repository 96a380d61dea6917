package dataset

import "fmt"

// RowError reports a malformed data row with enough context to find it in
// the source file. Malformed rows are never silently tolerated or guessed
// at; the row's verbatim content travels with the error.
type RowError struct {
	Path string
	Line int    // 1-based line number in the source file
	Raw  string // the offending line, verbatim
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v (row: %q)", e.Path, e.Line, e.Err, e.Raw)
}

func (e *RowError) Unwrap() error { return e.Err }
