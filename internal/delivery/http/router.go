package http

import (
	"database/sql"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"agendahub/internal/delivery/http/controllers"
	"agendahub/internal/delivery/http/helpers"
	"agendahub/internal/delivery/http/middleware"
	"agendahub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Mutating routes require a bearer token; reads are public.
func NewRouter(
	events *controllers.EventController,
	categories *controllers.CategoryController,
	auth *controllers.AuthController,
	verifier domain.TokenVerifier,
	db *sql.DB,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/login", auth.Login)

	// Events
	mux.HandleFunc("POST /events", requireAuth(events.Create))
	mux.HandleFunc("GET /events", events.List)
	mux.HandleFunc("GET /events/window", events.ListWindow)
	mux.HandleFunc("GET /events/{eventID}", events.Get)
	mux.HandleFunc("PUT /events/{eventID}/schedule", requireAuth(events.Reschedule))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(events.Delete))

	// Categories
	mux.HandleFunc("POST /categories", requireAuth(categories.Create))
	mux.HandleFunc("GET /categories", categories.List)
	mux.HandleFunc("PUT /categories/{categoryID}", requireAuth(categories.Rename))
	mux.HandleFunc("DELETE /categories/{categoryID}", requireAuth(categories.Delete))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
