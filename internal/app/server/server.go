package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/app/handler"
	"github.com/mdpad/mdpad/internal/middleware"
)

// Init builds the HTTP router. The server side of the application is
// diagnostics only; every document operation happens client-side.
func Init(logger *zap.Logger) *chi.Mux {
	getHandler := handler.NewGet(logger)
	postHandler := handler.NewPost(logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzip)

	r.Get("/api/health", getHandler.Health)
	r.Post("/api/preview", postHandler.Preview)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
