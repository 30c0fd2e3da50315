package diskfrag

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type Error interface {
	error
	WithMessage(message string) Error
	Wrap(err error) Error
}

type baseDiskfragError string

const rootError = baseDiskfragError("")

var ErrAlreadyFree = rootError.WithMessage("Unit already free")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrMalformedInput = rootError.WithMessage("Malformed disk map")
var ErrNoSpaceOnDevice = rootError.WithMessage("No space left on device")
var ErrNotFound = rootError.WithMessage("No such file or directory")
var ErrNotSupported = rootError.WithMessage("Operation not supported")

func (e baseDiskfragError) Error() string {
	return string(e)
}

func (e baseDiskfragError) WithMessage(message string) Error {
	return customDiskfragError{
		message:       message,
		originalError: e,
	}
}

func (e baseDiskfragError) Wrap(err error) Error {
	return customDiskfragError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customDiskfragError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customDiskfragError) Error() string {
	return e.message
}

func (e customDiskfragError) WithMessage(message string) Error {
	return customDiskfragError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customDiskfragError) Wrap(err error) Error {
	return customDiskfragError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customDiskfragError) Unwrap() error {
	return e.originalError
}
