package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"dashboard.must.dev/internal/invoke"
	"dashboard.must.dev/internal/logging"
	"dashboard.must.dev/internal/models"
)

// GreetInput is the input schema for the greet tool.
type GreetInput struct {
	Name string `json:"name" jsonschema:"the name to greet"`
}

// GreetOutput is the output schema for the greet tool.
type GreetOutput struct {
	Greeting string `json:"greeting"`
}

// KPIsInput is the (empty) input schema for the get_dashboard_kpis tool.
type KPIsInput struct{}

// KPIsOutput is the output schema for the get_dashboard_kpis tool.
type KPIsOutput struct {
	KPIs  []models.Kpi `json:"kpis"`
	Count int          `json:"count"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        invoke.CommandGreet,
		Description: "Return the backend's greeting for a name",
	}, s.handleGreet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        invoke.CommandGetDashboardKPIs,
		Description: "Return the four dashboard KPI cards",
	}, s.handleGetDashboardKPIs)
}

// dispatch routes a tool call through the command registry so every transport
// shares the same handlers and logging.
func (s *Server) dispatch(ctx context.Context, name string, input any) (any, error) {
	args, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encoding %s arguments: %w", name, err)
	}
	return s.commands.Invoke(logging.WithLogger(ctx, s.logger), name, args)
}

func (s *Server) handleGreet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GreetInput,
) (*mcp.CallToolResult, GreetOutput, error) {
	result, err := s.dispatch(ctx, invoke.CommandGreet, invoke.GreetArgs{Name: input.Name})
	if err != nil {
		return nil, GreetOutput{}, err
	}

	greeting, ok := result.(string)
	if !ok {
		return nil, GreetOutput{}, fmt.Errorf("%w: %s returned %T", ErrUnexpectedResult, invoke.CommandGreet, result)
	}

	return nil, GreetOutput{Greeting: greeting}, nil
}

func (s *Server) handleGetDashboardKPIs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ KPIsInput,
) (*mcp.CallToolResult, KPIsOutput, error) {
	result, err := s.dispatch(ctx, invoke.CommandGetDashboardKPIs, nil)
	if err != nil {
		return nil, KPIsOutput{}, err
	}

	kpis, ok := result.([]models.Kpi)
	if !ok {
		return nil, KPIsOutput{}, fmt.Errorf("%w: %s returned %T", ErrUnexpectedResult, invoke.CommandGetDashboardKPIs, result)
	}

	return nil, KPIsOutput{KPIs: kpis, Count: len(kpis)}, nil
}
