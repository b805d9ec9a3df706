package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wellnest-health/wellnest-backend/internal/handlers"
	"github.com/wellnest-health/wellnest-backend/internal/middleware"
)

// Setup registers the API routes. Everything except register and login sits
// behind bearer session auth; the credential endpoints get their own tighter
// per-IP limit.
func Setup(r chi.Router, auth *middleware.Auth, credentialLimit func(http.Handler) http.Handler, users *handlers.AuthHandler, journal *handlers.JournalHandler, diagnosis *handlers.DiagnosisHandler, vitals *handlers.VitalsHandler) {
	r.Group(func(cr chi.Router) {
		cr.Use(credentialLimit)
		cr.Post("/api/users/register", users.Register)
		cr.Post("/api/users/login", users.Login)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAuth)

		pr.Get("/api/users/profile", users.Profile)
		pr.Post("/api/users/logout", users.Logout)

		pr.Post("/api/journal", journal.Create)
		pr.Get("/api/journal", journal.List)

		pr.Post("/api/diagnosis", diagnosis.Diagnose)
		pr.Get("/api/diagnosis", diagnosis.History)

		pr.Post("/api/vitals", vitals.Add)
		pr.Get("/api/vitals", vitals.History)
	})
}
