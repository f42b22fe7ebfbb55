package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	snapshotRoute = "/db/public"
	manifestRoute = "/db/public.sha256"
	infoRoute     = "/api/snapshot"
	versionRoute  = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Group(func(r chi.Router) {
		r.Get(snapshotRoute, h.getSnapshot)
		r.Head(snapshotRoute, h.getSnapshot)
		r.Get(manifestRoute, h.getManifest)
		r.Get(infoRoute, h.getSnapshotInfo)
		r.Get(versionRoute, h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
