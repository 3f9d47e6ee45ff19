package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/", http.HandlerFunc(webUI.dashboardHandler))
	router.Handler(http.MethodGet, "/debug/", http.HandlerFunc(webUI.debugIndexHandler))
}
