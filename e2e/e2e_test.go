package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentravel-go/internal/config"
	analyticsdomain "zentravel-go/internal/domain/analytics"
	currencydomain "zentravel-go/internal/domain/currency"
	expensesdomain "zentravel-go/internal/domain/expenses"
	itinerarydomain "zentravel-go/internal/domain/itinerary"
	packingdomain "zentravel-go/internal/domain/packing"
	"zentravel-go/internal/domain/trip"
	"zentravel-go/internal/repository/inmemory"
	"zentravel-go/internal/seed"
	"zentravel-go/internal/transport/httpserver"
	"zentravel-go/internal/transport/httpserver/handler"
	"zentravel-go/pkg/logger"
)

type testEnv struct {
	server   *httptest.Server
	analyzer *itinerarydomain.Analyzer
}

// setupE2E assembles the full in-memory stack behind a real router, the
// same way the app wires it at boot. planner may be nil to exercise the
// disabled path.
func setupE2E(t *testing.T, planner itinerarydomain.Planner) *testEnv {
	t.Helper()

	cfg := config.Config{
		HTTPPort:    "0",
		CORSOrigins: []string{"http://localhost:5173"},
		Planner:     config.PlannerConfig{Timeout: 2 * time.Second, RateBurst: 3},
		Trip:        config.TripConfig{DefaultExchangeRate: 0.215},
	}

	log := logger.NewDiscard()
	users := trip.NewRegistry(seed.Users())

	itineraryRepo := inmemory.NewItineraryStore(seed.Itinerary())
	expenseRepo := inmemory.NewExpenseLedger(seed.Expenses())
	packingRepo := inmemory.NewPackingStore(seededUserIDs(users), seed.PackingTemplate())
	rates := currencydomain.NewRateStore(cfg.Trip.DefaultExchangeRate)

	itinerarySvc := itinerarydomain.NewService(itineraryRepo)
	analyzer := itinerarydomain.NewAnalyzer(itineraryRepo, planner, cfg.Planner.Timeout, log)
	expensesSvc := expensesdomain.NewService(expenseRepo, users)
	analyticsSvc := analyticsdomain.NewService(expenseRepo, rates)
	packingSvc := packingdomain.NewService(packingRepo)

	handlers := handler.New(users, seed.PreTripNotes(), itinerarySvc, analyzer, expensesSvc, analyticsSvc, packingSvc, rates, log)
	router := httpserver.NewRouter(cfg, handlers, users)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, analyzer: analyzer}
}

func seededUserIDs(users *trip.Registry) []string {
	list := users.List()
	ids := make([]string, len(list))
	for i, user := range list {
		ids[i] = user.ID
	}
	return ids
}

func (e *testEnv) request(t *testing.T, method, path, userID string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, respBody
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Error.Code
}

func TestHealthAndSession(t *testing.T) {
	env := setupE2E(t, nil)

	resp, _ := env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The roster is public; everything else needs a selected member.
	resp, body := env.request(t, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roster struct {
		Users []trip.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(body, &roster))
	require.Len(t, roster.Users, 4)
	assert.Equal(t, "u1", roster.Users[0].ID)

	resp, body = env.request(t, http.MethodGet, "/api/itinerary", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "user_not_selected", errorCode(t, body))

	resp, body = env.request(t, http.MethodGet, "/api/session/me", "u9", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "user_not_selected", errorCode(t, body))

	resp, body = env.request(t, http.MethodGet, "/api/session/me", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me trip.User
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "John", me.Name)
}

func TestItineraryFlow(t *testing.T) {
	env := setupE2E(t, nil)

	resp, body := env.request(t, http.MethodGet, "/api/itinerary", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var itinerary struct {
		Days []itinerarydomain.Day `json:"days"`
	}
	require.NoError(t, json.Unmarshal(body, &itinerary))
	require.Len(t, itinerary.Days, 5)

	// Any member may annotate any activity; the note is shared state.
	resp, _ = env.request(t, http.MethodPut, "/api/itinerary/activities/d1-3/note", "u2", map[string]string{
		"note": "記得提早預約",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.request(t, http.MethodGet, "/api/itinerary", "u3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &itinerary))
	found := false
	for _, day := range itinerary.Days {
		for _, activity := range day.Activities {
			if activity.ID == "d1-3" {
				found = true
				assert.Equal(t, "記得提早預約", activity.UserNotes)
			}
		}
	}
	require.True(t, found, "activity d1-3 missing from itinerary")

	resp, body = env.request(t, http.MethodPut, "/api/itinerary/activities/missing/note", "u1", map[string]string{
		"note": "x",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "activity_not_found", errorCode(t, body))

	resp, body = env.request(t, http.MethodGet, "/api/itinerary/map-link?location=東京駅", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var link struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(body, &link))
	assert.Contains(t, link.URL, "https://www.google.com/maps/dir/?api=1&destination=")
}

func TestAnalysisDisabledWithoutPlanner(t *testing.T) {
	env := setupE2E(t, nil)

	require.False(t, env.analyzer.Enabled())

	resp, body := env.request(t, http.MethodPost, "/api/itinerary/analysis", "u1", map[string]string{
		"input": "五天四夜東京自由行",
	})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "planner_disabled", errorCode(t, body))

	resp, body = env.request(t, http.MethodGet, "/api/itinerary/analysis", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var state itinerarydomain.AnalysisState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, itinerarydomain.AnalysisIdle, state.Status)
}

type stubPlanner struct {
	days []itinerarydomain.Day
}

func (p *stubPlanner) GenerateItinerary(ctx context.Context, input string) ([]itinerarydomain.Day, error) {
	return p.days, nil
}

func TestAnalysisReplacesItinerary(t *testing.T) {
	planner := &stubPlanner{days: []itinerarydomain.Day{
		{DayID: 1, DayTitle: "京都一日", Activities: []itinerarydomain.Activity{
			{Title: "清水寺", Type: itinerarydomain.ActivitySightseeing, TransportMode: itinerarydomain.TransportTrain},
		}},
	}}
	env := setupE2E(t, planner)

	resp, body := env.request(t, http.MethodPost, "/api/itinerary/analysis", "u1", map[string]string{
		"input": "改去京都一日遊",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	state := waitForAnalysis(t, env)
	require.Equal(t, itinerarydomain.AnalysisSucceeded, state.Status)

	resp, body = env.request(t, http.MethodGet, "/api/itinerary", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var itinerary struct {
		Days []itinerarydomain.Day `json:"days"`
	}
	require.NoError(t, json.Unmarshal(body, &itinerary))
	require.Len(t, itinerary.Days, 1)
	assert.Equal(t, "京都一日", itinerary.Days[0].DayTitle)
	require.Len(t, itinerary.Days[0].Activities, 1)
	assert.NotEmpty(t, itinerary.Days[0].Activities[0].ID)
}

func TestAnalysisRejectsBlankInput(t *testing.T) {
	planner := &stubPlanner{}
	env := setupE2E(t, planner)

	resp, body := env.request(t, http.MethodPost, "/api/itinerary/analysis", "u1", map[string]string{
		"input": "   ",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", errorCode(t, body))
}

func waitForAnalysis(t *testing.T, env *testEnv) itinerarydomain.AnalysisState {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		state := env.analyzer.State()
		if state.Status != itinerarydomain.AnalysisPending {
			return state
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("analysis never settled")
	return itinerarydomain.AnalysisState{}
}

func TestExpenseFlow(t *testing.T) {
	env := setupE2E(t, nil)

	// Seeded ledger: two shared items plus u1's personal snack.
	resp, body := env.request(t, http.MethodGet, "/api/expenses", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Items   []expensesdomain.Expense `json:"items"`
		Summary analyticsdomain.Summary  `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, float64(17000), list.Summary.SharedJPY)
	assert.Equal(t, float64(0), list.Summary.PersonalJPY)

	// u1 tops up a Suica card for the group.
	resp, body = env.request(t, http.MethodPost, "/api/expenses", "u1", map[string]interface{}{
		"title":   "Suica 加值",
		"amount":  3000,
		"payerId": "u1",
		"type":    "SHARED",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created expensesdomain.Expense
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.OwnerID)
	assert.Equal(t, "JPY", created.Currency)

	resp, body = env.request(t, http.MethodGet, "/api/expenses", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 3)
	assert.Equal(t, created.ID, list.Items[0].ID, "new expense must appear first")
	assert.Equal(t, float64(20000), list.Summary.SharedJPY)

	// Personal items stay invisible to everyone but their owner.
	resp, body = env.request(t, http.MethodPost, "/api/expenses", "u3", map[string]interface{}{
		"title":   "扭蛋",
		"amount":  500,
		"payerId": "u3",
		"type":    "PERSONAL",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var personal expensesdomain.Expense
	require.NoError(t, json.Unmarshal(body, &personal))

	resp, body = env.request(t, http.MethodGet, "/api/expenses", "u2", nil)
	require.NoError(t, json.Unmarshal(body, &list))
	for _, item := range list.Items {
		assert.NotEqual(t, personal.ID, item.ID, "u3's personal item leaked to u2")
	}

	resp, body = env.request(t, http.MethodDelete, "/api/expenses/"+personal.ID, "u2", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "expense_not_found", errorCode(t, body))

	resp, _ = env.request(t, http.MethodDelete, "/api/expenses/"+personal.ID, "u3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Totals are recomputed, not drifted: summary matches the ledger.
	resp, body = env.request(t, http.MethodGet, "/api/expenses/summary", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary analyticsdomain.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, float64(20000), summary.SharedJPY)
}

func TestExpenseValidation(t *testing.T) {
	env := setupE2E(t, nil)

	resp, body := env.request(t, http.MethodPost, "/api/expenses", "u1", map[string]interface{}{
		"title":   "",
		"amount":  100,
		"payerId": "u1",
		"type":    "SHARED",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", errorCode(t, body))

	resp, body = env.request(t, http.MethodPost, "/api/expenses", "u1", map[string]interface{}{
		"title":   "x",
		"amount":  100,
		"payerId": "u9",
		"type":    "SHARED",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", errorCode(t, body))
}

func TestPackingFlow(t *testing.T) {
	env := setupE2E(t, nil)

	resp, body := env.request(t, http.MethodGet, "/api/packing", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Categories []packingdomain.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Categories, 4)

	resp, body = env.request(t, http.MethodPatch, "/api/packing/categories/0/items/0", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled packingdomain.Item
	require.NoError(t, json.Unmarshal(body, &toggled))
	assert.True(t, toggled.Checked)

	resp, body = env.request(t, http.MethodPost, "/api/packing/categories/0/items", "u1", map[string]string{
		"label": "行動電源",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var added packingdomain.Item
	require.NoError(t, json.Unmarshal(body, &added))
	assert.NotEmpty(t, added.ID)

	// u2's list is untouched by u1's edits.
	resp, body = env.request(t, http.MethodGet, "/api/packing", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.False(t, list.Categories[0].Items[0].Checked)
	for _, item := range list.Categories[0].Items {
		assert.NotEqual(t, added.ID, item.ID)
	}

	resp, body = env.request(t, http.MethodPost, "/api/packing/categories", "u1", map[string]string{
		"title": "電子產品",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = env.request(t, http.MethodDelete, "/api/packing/categories/4", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.request(t, http.MethodDelete, "/api/packing/categories/9", "u1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", errorCode(t, body))

	resp, body = env.request(t, http.MethodPost, "/api/packing/categories/abc/items", "u1", map[string]string{
		"label": "x",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_index", errorCode(t, body))
}

func TestCurrencyFlow(t *testing.T) {
	env := setupE2E(t, nil)

	resp, body := env.request(t, http.MethodGet, "/api/currency/rate", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rate struct {
		Rate float64 `json:"rate"`
	}
	require.NoError(t, json.Unmarshal(body, &rate))
	assert.Equal(t, 0.215, rate.Rate)

	resp, _ = env.request(t, http.MethodPut, "/api/currency/rate", "u1", map[string]float64{"rate": 0.22})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.request(t, http.MethodPut, "/api/currency/rate", "u1", map[string]float64{"rate": -1})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", errorCode(t, body))

	// The shared rate drives every summary.
	resp, body = env.request(t, http.MethodGet, "/api/expenses/summary", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary analyticsdomain.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 0.22, summary.Rate)

	resp, body = env.request(t, http.MethodPost, "/api/currency/convert", "u1", map[string]interface{}{
		"amount":    1000,
		"direction": "JPY_TO_TWD",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var converted struct {
		Result float64 `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &converted))
	assert.InDelta(t, 220, converted.Result, 1e-9)

	resp, body = env.request(t, http.MethodPost, "/api/currency/evaluate", "u1", map[string]string{
		"expression": "100+200*2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &converted))
	assert.Equal(t, float64(500), converted.Result)

	resp, body = env.request(t, http.MethodPost, "/api/currency/evaluate", "u1", map[string]string{
		"expression": "5/0",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "division_by_zero", errorCode(t, body))

	resp, body = env.request(t, http.MethodPost, "/api/currency/evaluate", "u1", map[string]string{
		"expression": "1//2",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "invalid_expression", errorCode(t, body))
}

func TestPreTripNotes(t *testing.T) {
	env := setupE2E(t, nil)

	resp, body := env.request(t, http.MethodGet, "/api/info/notes", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes struct {
		Notes []trip.PreTripNote `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(body, &notes))
	require.Len(t, notes.Notes, 3)
	assert.Equal(t, "入境須知", notes.Notes[0].Title)
}
