package invoke

import "errors"

var (
	// ErrUnknownCommand is returned when no handler is registered under the requested name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArguments is returned when the arguments cannot be decoded for the command.
	ErrInvalidArguments = errors.New("invalid command arguments")

	ErrDuplicateCommand = errors.New("command already registered")

	ErrInvalidCommandName = errors.New("invalid command name")
)
