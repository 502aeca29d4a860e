// Package invoke implements the command-dispatch boundary: a table mapping a
// command name to a handler, called synchronously once per request. Transports
// (HTTP, MCP, CLI) only decode the name and raw arguments and hand them here.
package invoke

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"dashboard.must.dev/internal/logging"
	"dashboard.must.dev/internal/models"
	"dashboard.must.dev/internal/utils"
)

// Handler runs one command. args is the raw JSON argument object and may be empty.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

type command struct {
	description string
	handler     Handler
}

// Registry maps command names to handlers.
// Registration normally happens once at start-up; Invoke is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]command
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]command),
	}
}

// Register adds a handler under name. Names must be lower snake case and unique.
func (r *Registry) Register(name, description string, h Handler) error {
	if err := utils.ValidateCommandName(name); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidCommandName, name, err)
	}
	if h == nil {
		return fmt.Errorf("command %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.commands[name] = command{description: description, handler: h}
	return nil
}

// Has reports whether a command is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.commands[name]
	return ok
}

// Commands lists the registered commands sorted by name.
func (r *Registry) Commands() []models.CommandInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]models.CommandInfo, 0, len(r.commands))
	for name, cmd := range r.commands {
		infos = append(infos, models.CommandInfo{Name: name, Description: cmd.description})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Invoke dispatches name with args. The logger is taken from ctx.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	r.mu.RLock()
	cmd, ok := r.commands[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	logger := logging.FromContext(ctx)
	start := time.Now()

	result, err := cmd.handler(ctx, args)
	if err != nil {
		logging.LogError(logger, "command_failed", err,
			slog.String("command", name),
			slog.String("component", "invoke"))
		return nil, err
	}

	logging.LogOperation(logger, "command_invoked",
		slog.String("command", name),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "invoke"))

	return result, nil
}
