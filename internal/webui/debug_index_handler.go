package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"dashboard.must.dev/internal/appconf"
	"dashboard.must.dev/internal/dashboard"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// redactedConfig hides API keys but keeps their count visible.
func redactedConfig(cfg appconf.Config) appconf.Config {
	keys := make([]string, len(cfg.ApiKeys))
	for i := range keys {
		keys[i] = "********"
	}
	cfg.ApiKeys = keys
	return cfg
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "commands":
		data = webUI.Commands.Commands()
		title = "Bridge - Registered Commands"
	case "kpis":
		data = dashboard.KPIs()
		title = "Dashboard - KPIs"
	case "config":
		data = redactedConfig(webUI.Config)
		title = "Backend - Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: commands, kpis, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
