package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"weatherwidget.app/internal/config"
)

func testConfig(t *testing.T, dbPath string) *config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return &config.Config{
		Server:   config.ServerConfig{Port: 0, ShutdownTimeoutSeconds: 1},
		Database: config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, SQLitePath: dbPath},
		Widget: config.WidgetConfig{
			DefaultUnits:           "F",
			ClockIntervalSeconds:   60,
			RefreshIntervalMinutes: 15,
			LoadTimeoutSeconds:     1,
			WindyThresholdKph:      20,
			MockFallback:           true,
			HostTimezone:           "UTC",
		},
		Geocoding: config.GeocodingConfig{ProviderOrder: []string{"opencage"}},
		Weather:   config.WeatherConfig{ProviderOrder: []string{"weatherapi"}},
		Cache:     config.CacheConfig{Type: config.CacheTypeMemory},
		Logging:   config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func newTestApplication(t *testing.T, dbPath string) *Application {
	t.Helper()
	cfg := testConfig(t, dbPath)

	deps, err := NewDependencyContainer(cfg, nil)
	require.NoError(t, err)

	app, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return app
}

func shutdown(t *testing.T, app *Application) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, app.Shutdown(ctx))
}

// ApplicationSuite runs HTTP checks against a fully wired in-memory application
type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func (s *ApplicationSuite) SetupTest() {
	s.app = newTestApplication(s.T(), ":memory:")
}

func (s *ApplicationSuite) TearDownTest() {
	shutdown(s.T(), s.app)
}

func (s *ApplicationSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.app.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (s *ApplicationSuite) TestHealth() {
	w := s.get("/health")
	s.Equal(http.StatusOK, w.Code)

	var health struct {
		Status     string                    `json:"status"`
		Components map[string]map[string]any `json:"components"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &health))
	s.Equal("degraded", health.Status, "no upstream providers are configured")
	s.Contains(health.Components, "database")
	s.Contains(health.Components, "widgets")
}

func (s *ApplicationSuite) TestMetrics() {
	w := s.get("/metrics")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "weatherwidget_cache_hit_ratio")
}

func (s *ApplicationSuite) TestClassify() {
	w := s.get("/api/classify?code=95")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Thunderstorm")
}

func (s *ApplicationSuite) TestUnknownWidget() {
	s.Equal(http.StatusNotFound, s.get("/api/widgets/missing").Code)
}

func TestApplicationSuite(t *testing.T) {
	suite.Run(t, new(ApplicationSuite))
}

func TestApplication_RestoresPersistedWidgets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "widgets.db")

	first := newTestApplication(t, dbPath)
	body, _ := json.Marshal(map[string]string{"location": "Paris", "units": "C"})
	req := httptest.NewRequest(http.MethodPost, "/api/widgets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	first.GetRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, first.Widgets().Count())
	shutdown(t, first)

	second := newTestApplication(t, dbPath)
	defer shutdown(t, second)
	assert.Equal(t, 0, second.Widgets().Count())

	restored, err := second.RestoreWidgets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	widgets := second.Widgets().List()
	require.Len(t, widgets, 1)
	assert.Equal(t, "Paris", widgets[0].Attributes().Location)
}

func TestNewDependencyContainer_InvalidHostTimezone(t *testing.T) {
	cfg := testConfig(t, ":memory:")
	cfg.Widget.HostTimezone = "Mars/Olympus_Mons"

	_, err := NewDependencyContainer(cfg, nil)
	assert.Error(t, err)
}
