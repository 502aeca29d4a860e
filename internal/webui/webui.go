// Package webui serves developer-facing HTML pages for inspecting the running backend.
package webui

import "dashboard.must.dev/internal/app"

type WebUI struct {
	*app.Application
}

func New(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}
