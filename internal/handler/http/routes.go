package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/logout", h.logout)

		r.Get("/api/missions", h.listMissions)
		r.Post("/api/missions", h.createMission)
		r.Get("/api/missions/{missionID}/updates", h.listMissionUpdates)

		r.Get("/api/diary", h.listDiary)

		r.Post("/api/progress", h.recordProgress)
		r.Post("/api/progress/preview", h.previewProgress)
	})

	// accepted evidence files stay retrievable by the stable path returned
	// on submission
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
	router.Get("/uploads/*", fileServer.ServeHTTP)

	return router
}
