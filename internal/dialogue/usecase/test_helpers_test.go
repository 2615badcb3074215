package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"commute-assistant/internal/dialogue/conversation"
	"commute-assistant/internal/dialogue/repository"
	"commute-assistant/internal/model"
	"commute-assistant/pkg/classifier"
	"commute-assistant/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockClassifier struct {
	prediction classifier.Prediction
	err        error
}

func (m *mockClassifier) Predict(ctx context.Context, text string) (classifier.Prediction, error) {
	return m.prediction, m.err
}

type mockTransitRepo struct {
	mu sync.Mutex

	arrivals    []repository.ServiceArrivals
	arrivalsErr error
	geocode     map[string]repository.GeocodeResult
	routes      []repository.Route
	routesErr   error
	saved       []repository.SavedLocation
	savedErr    error
	createdPlan repository.CommutePlan
	createErr   error

	lastStopQuery string
	lastServiceNo string
	lastPlanOpt   repository.CreateCommutePlanOptions
}

func (m *mockTransitRepo) Geocode(ctx context.Context, token, locationName string) (repository.GeocodeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.geocode[locationName]; ok {
		return r, nil
	}
	return repository.GeocodeResult{}, repository.ErrNotFound
}

func (m *mockTransitRepo) BusArrivals(ctx context.Context, token, stopQuery, serviceNo string) ([]repository.ServiceArrivals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastStopQuery = stopQuery
	m.lastServiceNo = serviceNo
	return m.arrivals, m.arrivalsErr
}

func (m *mockTransitRepo) Routing(ctx context.Context, token string, start, end model.Coordinates) ([]repository.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.routes, m.routesErr
}

func (m *mockTransitRepo) SavedLocations(ctx context.Context, token string) ([]repository.SavedLocation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, m.savedErr
}

func (m *mockTransitRepo) CreateCommutePlan(ctx context.Context, token string, opt repository.CreateCommutePlanOptions) (repository.CommutePlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPlanOpt = opt
	return m.createdPlan, m.createErr
}

// scriptedLLM serves queued reply texts in order. An exhausted queue answers
// with 500, so tests can also exercise the generation-failure fallbacks.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []string
	server  *httptest.Server
}

func newScriptedLLM(t *testing.T, replies ...string) (*gemini.Client, *scriptedLLM) {
	t.Helper()

	s := &scriptedLLM{replies: replies}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.replies) == 0 {
			http.Error(w, "no scripted reply", http.StatusInternalServerError)
			return
		}
		text := s.replies[0]
		s.replies = s.replies[1:]

		resp := gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(s.server.Close)

	client := gemini.NewClient("test-key")
	client.SetAPIURL(s.server.URL)
	return client, s
}

func (s *scriptedLLM) push(replies ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

func newTestUseCase(t *testing.T, cls *mockClassifier, transit *mockTransitRepo, replies ...string) (*implUseCase, *scriptedLLM) {
	t.Helper()

	llm, script := newScriptedLLM(t, replies...)
	store := conversation.NewStore(64, time.Minute)
	uc := New(&mockLogger{}, cls, llm, transit, store, Config{})
	return uc, script
}
