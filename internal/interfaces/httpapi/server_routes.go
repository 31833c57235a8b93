package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/cup/{seasonID}/overview", handler.GetCupOverview)
	mux.HandleFunc("GET /v1/cup/{seasonID}/schedule", handler.GetCupSchedule)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/bracket", handler.GetSeasonBracket)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/table", handler.GetSeasonTable)
	mux.HandleFunc("GET /v1/live/ws", handler.liveHub.ServeWS)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-live", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncLiveJob)))
}
