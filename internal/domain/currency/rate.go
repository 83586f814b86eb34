package currency

import (
	"math"
	"sync"
)

// RateStore holds the single shared JPY→TWD rate. There is no history;
// whatever is stored is "current" for every consumer, including expense
// summaries.
type RateStore struct {
	mu   sync.RWMutex
	rate float64
}

func NewRateStore(initial float64) *RateStore {
	if !validRate(initial) {
		initial = 0.215
	}
	return &RateStore{rate: initial}
}

func (s *RateStore) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// SetRate rejects non-positive and non-finite values; accepting them
// would corrupt every derived total.
func (s *RateStore) SetRate(rate float64) error {
	if !validRate(rate) {
		return ErrInvalidRate
	}
	s.mu.Lock()
	s.rate = rate
	s.mu.Unlock()
	return nil
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsNaN(rate) && !math.IsInf(rate, 0)
}
