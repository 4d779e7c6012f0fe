package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	userHttp "github.com/vasiliy-maslov/user-admin/internal/handler/http"
	"github.com/vasiliy-maslov/user-admin/internal/user"
	"github.com/vasiliy-maslov/user-admin/internal/web"
)

// NewAPIRouter serves the stub users API backed by repo.
func NewAPIRouter(repo user.Repository) *chi.Mux {
	r := newBaseRouter()
	userHttp.NewUserHandler(repo).RegisterRoutes(r)
	return r
}

// NewUIRouter serves the browser console.
func NewUIRouter(h *web.Handler) *chi.Mux {
	r := newBaseRouter()
	h.RegisterRoutes(r)
	return r
}

func newBaseRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
