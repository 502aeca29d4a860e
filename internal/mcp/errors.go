// Package mcp exposes the dashboard commands as Model Context Protocol tools,
// so AI assistants can call the same bridge the front-end uses.
package mcp

import "errors"

// ErrMissingRegistry is returned when no command registry is provided.
var ErrMissingRegistry = errors.New("mcp: command registry is required")

// ErrUnexpectedResult is returned when a command returns a value of the wrong type for its tool.
var ErrUnexpectedResult = errors.New("mcp: unexpected command result")
