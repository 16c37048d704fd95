package cmd

import (
	"fmt"

	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
)

// ExitError ends the process with Code after the command already printed
// its own diagnostics.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// InputFileError signals that a mandatory project document could not be read.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot read %s", e.Path)
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() []error {
	return []error{sharederrors.ErrMarkupUnreadable, e.Err}
}
