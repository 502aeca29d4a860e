package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"dashboard.must.dev/internal/dashboard"
)

const (
	CommandGreet            = "greet"
	CommandGetDashboardKPIs = "get_dashboard_kpis"
)

// GreetArgs is the argument object of the greet command.
type GreetArgs struct {
	Name string `json:"name"`
}

// NewDefaultRegistry returns a registry holding the dashboard commands.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	mustRegister(r, CommandGreet, "Format a greeting for the given name", greetHandler)
	mustRegister(r, CommandGetDashboardKPIs, "List the dashboard KPI cards in display order", kpisHandler)
	return r
}

func mustRegister(r *Registry, name, description string, h Handler) {
	if err := r.Register(name, description, h); err != nil {
		panic(err)
	}
}

func greetHandler(_ context.Context, args json.RawMessage) (any, error) {
	var in GreetArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, fmt.Errorf("%s: %w", CommandGreet, err)
	}
	return dashboard.Greet(in.Name), nil
}

func kpisHandler(_ context.Context, _ json.RawMessage) (any, error) {
	return dashboard.KPIs(), nil
}

// decodeArgs treats missing, blank and null arguments as an empty object.
func decodeArgs(args json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
