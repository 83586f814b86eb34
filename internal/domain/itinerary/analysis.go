package itinerary

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"zentravel-go/pkg/logger"
)

// Planner converts a free-text travel plan into a structured day array.
// Implementations are non-deterministic; no two calls need to agree.
type Planner interface {
	GenerateItinerary(ctx context.Context, input string) ([]Day, error)
}

type AnalysisStatus string

const (
	AnalysisIdle      AnalysisStatus = "idle"
	AnalysisPending   AnalysisStatus = "pending"
	AnalysisFailed    AnalysisStatus = "failed"
	AnalysisSucceeded AnalysisStatus = "succeeded"
)

type AnalysisState struct {
	Status AnalysisStatus `json:"status"`
	Error  string         `json:"error,omitempty"`
}

const (
	msgAnalysisFailed = "AI 分析時發生錯誤，請稍後再試。"
	msgNoResult       = "無法產生行程，請試著提供更多細節。"
)

// Analyzer owns the regeneration lifecycle: at most one planner request
// in flight, a timeout on every request, and a sequence guard so a late
// response never overwrites state produced by a newer request. A failed
// or timed-out request leaves the stored itinerary untouched.
type Analyzer struct {
	repo    Repository
	planner Planner
	timeout time.Duration
	log     logger.Logger

	mu    sync.Mutex
	seq   uint64
	state AnalysisState
}

func NewAnalyzer(repo Repository, planner Planner, timeout time.Duration, log logger.Logger) *Analyzer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Analyzer{
		repo:    repo,
		planner: planner,
		timeout: timeout,
		log:     log,
		state:   AnalysisState{Status: AnalysisIdle},
	}
}

// Enabled reports whether a planner is configured for this session.
func (a *Analyzer) Enabled() bool {
	return a.planner != nil
}

func (a *Analyzer) State() AnalysisState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Start kicks off a regeneration for the given free text. It refuses
// blank input and refuses to stack a second request on a pending one.
func (a *Analyzer) Start(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrEmptyInput
	}
	if a.planner == nil {
		return ErrPlannerDisabled
	}

	a.mu.Lock()
	if a.state.Status == AnalysisPending {
		a.mu.Unlock()
		return ErrAnalysisInFlight
	}
	a.seq++
	seq := a.seq
	a.state = AnalysisState{Status: AnalysisPending}
	a.mu.Unlock()

	go a.run(seq, input)
	return nil
}

func (a *Analyzer) run(seq uint64, input string) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	days, err := a.planner.GenerateItinerary(ctx, input)

	a.mu.Lock()
	defer a.mu.Unlock()

	if seq != a.seq {
		// A newer request superseded this one; discard the response.
		a.log.Info("analysis: stale response discarded", "seq", seq)
		return
	}

	if err != nil {
		a.log.Warn("analysis: planner call failed", "err", err)
		a.state = AnalysisState{Status: AnalysisFailed, Error: msgAnalysisFailed}
		return
	}
	if len(days) == 0 {
		a.state = AnalysisState{Status: AnalysisFailed, Error: msgNoResult}
		return
	}

	assignActivityIDs(days)

	if err := a.repo.Replace(ctx, days); err != nil {
		a.log.Error("analysis: replace itinerary failed", "err", err)
		a.state = AnalysisState{Status: AnalysisFailed, Error: msgAnalysisFailed}
		return
	}

	a.log.Info("analysis: itinerary replaced", "days", len(days))
	a.state = AnalysisState{Status: AnalysisSucceeded}
}

// assignActivityIDs gives every received activity a fresh unique id.
// Planner output is never trusted to carry ids, and ids from prior
// state must not collide with new ones.
func assignActivityIDs(days []Day) {
	for di := range days {
		for ai := range days[di].Activities {
			days[di].Activities[ai].ID = uuid.NewString()
		}
	}
}
