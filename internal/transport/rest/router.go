package rest

import (
	"net/http"

	"github.com/heartmarshall/dailydiet-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewMux.
type Handlers struct {
	Auth    *AuthHandler
	Meals   *MealHandler
	Health  *HealthHandler
	Metrics http.Handler // optional; mounted on GET /metrics when set
}

// NewMux registers every route. requireUser guards authenticated routes and
// authLimit throttles the credential endpoints.
func NewMux(h Handlers, requireUser, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))

	mux.Handle("GET /me", requireUser(http.HandlerFunc(h.Auth.Me)))
	mux.Handle("DELETE /me", requireUser(http.HandlerFunc(h.Auth.DeleteMe)))

	mux.Handle("POST /meals", requireUser(http.HandlerFunc(h.Meals.Create)))
	mux.Handle("GET /meals", requireUser(http.HandlerFunc(h.Meals.List)))
	mux.Handle("GET /meals/metrics", requireUser(http.HandlerFunc(h.Meals.Metrics)))
	mux.Handle("GET /meals/{id}", requireUser(http.HandlerFunc(h.Meals.Get)))
	mux.Handle("PUT /meals/{id}", requireUser(http.HandlerFunc(h.Meals.Update)))
	mux.Handle("DELETE /meals/{id}", requireUser(http.HandlerFunc(h.Meals.Delete)))

	return mux
}
