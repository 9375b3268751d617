package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
)

var testNow = time.Date(2024, time.June, 1, 19, 0, 0, 0, time.UTC)

// stubLoader answers every load with the same observation or error
type stubLoader struct {
	mu       sync.Mutex
	obs      *weather.Observation
	err      error
	requests []weather.LoadRequest
}

func (l *stubLoader) LoadObservation(_ context.Context, request weather.LoadRequest) (*weather.Observation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, request)
	if l.err != nil {
		return nil, l.err
	}
	obs := *l.obs
	obs.Units = ports.Units(strings.ToUpper(string(request.Units)))
	if obs.Units == "" {
		obs.Units = ports.UnitsFahrenheit
	}
	return &obs, nil
}

func (l *stubLoader) calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}

func (l *stubLoader) lastRequest() weather.LoadRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.requests[len(l.requests)-1]
}

func parisObservation() *weather.Observation {
	return &weather.Observation{
		Temperature: 72,
		Units:       ports.UnitsFahrenheit,
		WindSpeed:   5,
		WindUnit:    "mph",
		Condition:   condition.ClassifyCode(0),
		Location: location.ResolvedLocation{
			Latitude:    48.8566,
			Longitude:   2.3522,
			DisplayName: "Paris",
			TimezoneID:  "Europe/Paris",
			Source:      location.SourceStatic,
		},
		Provider:   "openmeteo",
		ObservedAt: testNow,
	}
}

type staticHealth map[string]ports.HealthStatus

func (s staticHealth) CheckAll(context.Context) map[string]ports.HealthStatus { return s }

type testServer struct {
	server *HTTPServerAdapter
	router *gin.Engine
	loader *stubLoader
	repo   *mocks.WidgetRepository
	widget *widget.Manager
}

func newTestServer(t *testing.T, loader *stubLoader, health staticHealth) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetWidgetConfig().Return(ports.WidgetConfig{
		DefaultUnits:  ports.UnitsFahrenheit,
		ClockInterval: time.Hour,
	}).Maybe()

	repo := mocks.NewWidgetRepository(t)
	logger := mocks.NewPermissiveLogger(t)
	clk := clock.New(clock.WithHostLocation(time.UTC))

	seq := 0
	manager, err := widget.NewManager(widget.ManagerDependencies{
		Loader:     loader,
		Clock:      clk,
		Repository: repo,
		Config:     cfg,
		Logger:     logger,
		Metrics:    mocks.NewPermissiveMetrics(t),
		Now:        func() time.Time { return testNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("widget-%d", seq)
		},
	})
	require.NoError(t, err)
	t.Cleanup(manager.StopAll)

	if health == nil {
		health = staticHealth{}
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 8080},
		Loader:         loader,
		Widgets:        manager,
		Clock:          clk,
		HealthChecker:  health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("# metrics\n")) }),
		Logger:         logger,
		Now:            func() time.Time { return testNow },
	})
	require.NoError(t, err)

	return &testServer{server: server, router: server.GetRouter(), loader: loader, repo: repo, widget: manager}
}

// expectSaves lets the repository accept any number of saves
func (ts *testServer) expectSaves() {
	ts.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
