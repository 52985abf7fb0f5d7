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
	router.Use(withGZip)

	// an unsupported method on a known path answers like an unknown path, so
	// probing methods reveals nothing about the route table
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, "not found", http.StatusNotFound)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes guarded by the auth middleware; every handler below can rely on
	// the user ID being present in the request context
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/tasks", h.createTask)
		r.Get("/api/tasks", h.listTasks)
		r.Get("/api/tasks/{id}", h.getTask)
		r.Put("/api/tasks/{id}", h.updateTask)
		r.Delete("/api/tasks/{id}", h.deleteTask)
	})

	return router
}
