package webui

import (
	"embed"
	"net/http"
)

//go:embed dashboard.html
var dashboardFS embed.FS

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	page, err := dashboardFS.ReadFile("dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		webUI.Logger.Error("failed to write dashboard page", "error", err)
	}
}
