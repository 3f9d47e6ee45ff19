package webui

import (
	"taxipulse.nyc/internal/app"
)

// WebUI serves the embedded dashboard page and the /debug/ data dumps. The
// page talks back to the API with its own exempt key; everything else rides
// on the shared Application.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
