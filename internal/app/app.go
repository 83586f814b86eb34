package app

import (
	"context"
	"net/http"

	"zentravel-go/internal/config"
	"zentravel-go/internal/domain/analytics"
	"zentravel-go/internal/domain/currency"
	"zentravel-go/internal/domain/expenses"
	"zentravel-go/internal/domain/itinerary"
	"zentravel-go/internal/domain/packing"
	"zentravel-go/internal/domain/trip"
	"zentravel-go/internal/planner/gemini"
	"zentravel-go/internal/repository/inmemory"
	"zentravel-go/internal/seed"
	"zentravel-go/internal/transport/httpserver"
	"zentravel-go/internal/transport/httpserver/handler"
	"zentravel-go/pkg/logger"
)

// App wires one session's worth of state: everything lives in memory,
// seeded from static constants, and is gone when the process exits.
type App struct {
	cfg        config.Config
	httpServer *http.Server
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	users := trip.NewRegistry(seed.Users())

	itineraryRepo := inmemory.NewItineraryStore(seed.Itinerary())
	expenseRepo := inmemory.NewExpenseLedger(seed.Expenses())
	packingRepo := inmemory.NewPackingStore(userIDs(users), seed.PackingTemplate())
	rates := currency.NewRateStore(cfg.Trip.DefaultExchangeRate)

	// The planner is the one external collaborator. A missing key is
	// reported once and disables regeneration for the session; the rest
	// of the app keeps working.
	var planner itinerary.Planner
	if cfg.Planner.APIKey != "" {
		client, err := gemini.New(context.Background(), cfg.Planner.APIKey, cfg.Planner.Model, cfg.Planner.Locale, log)
		if err != nil {
			return nil, err
		}
		planner = client
	} else {
		log.Warn("app: GEMINI_API_KEY not set, itinerary analysis disabled")
	}

	itinerarySvc := itinerary.NewService(itineraryRepo)
	analyzer := itinerary.NewAnalyzer(itineraryRepo, planner, cfg.Planner.Timeout, log)
	expensesSvc := expenses.NewService(expenseRepo, users)
	analyticsSvc := analytics.NewService(expenseRepo, rates)
	packingSvc := packing.NewService(packingRepo)

	handlers := handler.New(users, seed.PreTripNotes(), itinerarySvc, analyzer, expensesSvc, analyticsSvc, packingSvc, rates, log)
	router := httpserver.NewRouter(cfg, handlers, users)
	srv := httpserver.New(cfg, router)

	return &App{cfg: cfg, httpServer: srv, log: log}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	// Nothing to tear down: all state is in-memory by design.
	return nil
}

func userIDs(users *trip.Registry) []string {
	list := users.List()
	ids := make([]string, len(list))
	for i, user := range list {
		ids[i] = user.ID
	}
	return ids
}
