package handler

import (
	analyticsdomain "zentravel-go/internal/domain/analytics"
	currencydomain "zentravel-go/internal/domain/currency"
	expensesdomain "zentravel-go/internal/domain/expenses"
	itinerarydomain "zentravel-go/internal/domain/itinerary"
	packingdomain "zentravel-go/internal/domain/packing"
	"zentravel-go/internal/domain/trip"
	"zentravel-go/pkg/logger"
)

type Handlers struct {
	Users     *trip.Registry
	Notes     []trip.PreTripNote
	Itinerary *itinerarydomain.Service
	Analyzer  *itinerarydomain.Analyzer
	Expenses  *expensesdomain.Service
	Analytics *analyticsdomain.Service
	Packing   *packingdomain.Service
	Rates     *currencydomain.RateStore
	log       logger.Logger
}

func New(
	users *trip.Registry,
	notes []trip.PreTripNote,
	itinerarySvc *itinerarydomain.Service,
	analyzer *itinerarydomain.Analyzer,
	expensesSvc *expensesdomain.Service,
	analyticsSvc *analyticsdomain.Service,
	packingSvc *packingdomain.Service,
	rates *currencydomain.RateStore,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:     users,
		Notes:     notes,
		Itinerary: itinerarySvc,
		Analyzer:  analyzer,
		Expenses:  expensesSvc,
		Analytics: analyticsSvc,
		Packing:   packingSvc,
		Rates:     rates,
		log:       log,
	}
}
