package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"zentravel-go/internal/config"
	"zentravel-go/internal/domain/trip"
	"zentravel-go/internal/transport/httpserver/handler"
	sessionmw "zentravel-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, users *trip.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(sessionmw.NewCORS(cfg.CORSOrigins))

	plannerLimiter := sessionmw.NewRateLimiter(5, cfg.Planner.RateBurst)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/users", handlers.ListUsers)

		session := sessionmw.NewSession(users)
		r.Group(func(r chi.Router) {
			r.Use(session.Middleware)

			r.Get("/session/me", handlers.Me)
			r.Get("/info/notes", handlers.ListPreTripNotes)

			r.Get("/itinerary", handlers.GetItinerary)
			r.Put("/itinerary/activities/{activity_id}/note", handlers.UpdateActivityNote)
			r.Get("/itinerary/map-link", handlers.MapLink)
			r.With(plannerLimiter.Limit).Post("/itinerary/analysis", handlers.StartAnalysis)
			r.Get("/itinerary/analysis", handlers.AnalysisStatus)

			r.Get("/expenses", handlers.ListExpenses)
			r.Post("/expenses", handlers.CreateExpense)
			r.Delete("/expenses/{id}", handlers.DeleteExpense)
			r.Get("/expenses/summary", handlers.ExpenseSummary)

			r.Get("/packing", handlers.GetPackingList)
			r.Post("/packing/categories", handlers.AddPackingCategory)
			r.Delete("/packing/categories/{cat_idx}", handlers.DeletePackingCategory)
			r.Post("/packing/categories/{cat_idx}/items", handlers.AddPackingItem)
			r.Patch("/packing/categories/{cat_idx}/items/{item_idx}", handlers.TogglePackingItem)
			r.Delete("/packing/categories/{cat_idx}/items/{item_idx}", handlers.DeletePackingItem)

			r.Get("/currency/rate", handlers.GetRate)
			r.Put("/currency/rate", handlers.SetRate)
			r.Post("/currency/convert", handlers.Convert)
			r.Post("/currency/evaluate", handlers.Evaluate)
		})
	})

	return r
}
