package pb

import "errors"

var (
	// ErrPathClosed is reported when the builder is used after Close.
	ErrPathClosed = errors.New("path already closed")
	// ErrUnknownCommand is reported by Push for a command letter the builder does not know.
	ErrUnknownCommand = errors.New("unknown path command")
	// ErrArgCount is reported by Push when arguments do not fit the command.
	ErrArgCount = errors.New("invalid number of arguments")
)
