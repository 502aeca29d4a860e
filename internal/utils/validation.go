package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Command names are lower snake case, e.g. get_dashboard_kpis.
var validCommandPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

const maxCommandNameLength = 64

// ValidateCommandName validates that a command name is safe and within reasonable limits
func ValidateCommandName(name string) error {
	if name == "" {
		return errors.New("command name cannot be empty")
	}

	if len(name) > maxCommandNameLength {
		return errors.New("command name too long (max 64 characters)")
	}

	if !validCommandPattern.MatchString(name) {
		return errors.New("command name contains invalid characters")
	}

	return nil
}

// ParseAPIKeys splits comma separated key lists and drops blanks. Values may
// already be split (flags) or arrive as a single "a,b" string (env vars).
func ParseAPIKeys(raw []string) []string {
	keys := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, key := range strings.Split(entry, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				keys = append(keys, key)
			}
		}
	}
	return keys
}
