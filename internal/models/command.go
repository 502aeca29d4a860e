package models

// CommandInfo describes a command exposed by the invocation bridge.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
