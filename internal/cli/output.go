package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"dashboard.must.dev/internal/logging"
	"dashboard.must.dev/internal/models"
)

// Output formats accepted by -o.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

func validFormat(format string) bool {
	switch format {
	case FormatJSON, FormatYAML, FormatTable:
		return true
	}
	return false
}

func renderResult(w io.Writer, result any, format string, logger *slog.Logger) error {
	switch format {
	case FormatYAML:
		return renderYAML(w, result, logger)
	case FormatTable:
		return renderTable(w, result)
	default:
		return renderJSON(w, result)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any, logger *slog.Logger) (err error) {
	enc := yaml.NewEncoder(w)
	defer logging.HandleDeferredError(&err, enc.Close, logger, "yaml_encode")

	enc.SetIndent(2)
	return enc.Encode(v)
}

// renderTable draws known list results as a table; anything else is printed as-is
// or, failing that, as JSON.
func renderTable(w io.Writer, result any) error {
	switch v := result.(type) {
	case []models.Kpi:
		renderKPITable(w, v)
		return nil
	case []models.CommandInfo:
		renderCommandTable(w, v)
		return nil
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		return renderJSON(w, result)
	}
}

func renderKPITable(w io.Writer, kpis []models.Kpi) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Title", "Value", "Icon", "Color"})
	for _, kpi := range kpis {
		t.AppendRow(table.Row{kpi.Title, kpi.Value, string(kpi.Icon), string(kpi.Color)})
	}
	t.Render()
}

func renderCommandTable(w io.Writer, commands []models.CommandInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Command", "Description"})
	for _, command := range commands {
		t.AppendRow(table.Row{command.Name, command.Description})
	}
	t.Render()
}
