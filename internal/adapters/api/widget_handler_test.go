package api

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// createWidget posts a widget and waits for its first load to finish
func createWidget(t *testing.T, ts *testServer, body string) WidgetResponse {
	t.Helper()
	calls := ts.loader.calls()

	rec := ts.do(t, http.MethodPost, "/api/widgets", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[WidgetResponse](t, rec)

	w, err := ts.widget.Get(created.ID)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return ts.loader.calls() > calls && !w.Loading()
	}, time.Second, 5*time.Millisecond)
	return created
}

func TestWidgetHandler_Create(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.ID == "widget-1" && d.Location == "Paris" && d.Units == ports.UnitsCelsius
	})).Return(nil).Once()

	rec := ts.do(t, http.MethodPost, "/api/widgets", `{"location":" Paris ","units":"c"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/widgets/widget-1", rec.Header().Get("Location"))

	created := decode[WidgetResponse](t, rec)
	assert.Equal(t, "widget-1", created.ID)
	assert.Equal(t, "Paris", created.Location)
	assert.Equal(t, ports.UnitsCelsius, created.Units)

	require.Eventually(t, func() bool {
		got := decode[WidgetResponse](t, ts.do(t, http.MethodGet, "/api/widgets/widget-1", ""))
		return got.View.TemperatureLabel == "72°C"
	}, time.Second, 5*time.Millisecond)
}

func TestWidgetHandler_Create_DefaultUnits(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.expectSaves()

	created := createWidget(t, ts, `{"location":"94513"}`)
	assert.Equal(t, ports.UnitsFahrenheit, created.Units)
}

func TestWidgetHandler_Create_Validation(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing location", `{"units":"F"}`, "location is required"},
		{"blank location", `{"location":"   "}`, "location is required"},
		{"bad units", `{"location":"Paris","units":"kelvin"}`, "units must be F or C"},
		{"malformed", `{"location":`, "invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/widgets", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestWidgetHandler_Create_RepositoryFailure(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.repo.EXPECT().Save(mock.Anything, mock.Anything).
		Return(errors.NewDatabaseError("failed to save widget", nil)).Once()

	rec := ts.do(t, http.MethodPost, "/api/widgets", `{"location":"Paris"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode[ErrorResponse](t, rec).Error)
	assert.Empty(t, ts.widget.List())
}

func TestWidgetHandler_ListAndGet(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.expectSaves()

	createWidget(t, ts, `{"location":"Paris"}`)
	createWidget(t, ts, `{"location":"Tokyo","units":"C"}`)

	rec := ts.do(t, http.MethodGet, "/api/widgets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]WidgetResponse](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Paris", list[0].Location)
	assert.Equal(t, "Tokyo", list[1].Location)

	rec = ts.do(t, http.MethodGet, "/api/widgets/widget-2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.UnitsCelsius, decode[WidgetResponse](t, rec).Units)

	rec = ts.do(t, http.MethodGet, "/api/widgets/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWidgetHandler_Update(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.Units == ports.UnitsFahrenheit
	})).Return(nil).Once()
	ts.repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.Location == "Paris" && d.Units == ports.UnitsCelsius
	})).Return(nil).Once()

	createWidget(t, ts, `{"location":"Paris","units":"F"}`)

	rec := ts.do(t, http.MethodPut, "/api/widgets/widget-1", `{"units":"C"}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	resp := decode[ReloadResponse](t, rec)
	assert.True(t, resp.Reloading)
	assert.Equal(t, ports.UnitsCelsius, resp.Widget.Units)
	assert.Equal(t, "Paris", resp.Widget.Location)

	require.Eventually(t, func() bool {
		return ts.loader.calls() == 2 && ts.loader.lastRequest().Units == ports.UnitsCelsius
	}, time.Second, 5*time.Millisecond)

	// unchanged attributes neither save nor reload
	rec = ts.do(t, http.MethodPut, "/api/widgets/widget-1", `{"location":"Paris","units":"c"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.False(t, decode[ReloadResponse](t, rec).Reloading)
	assert.Equal(t, 2, ts.loader.calls())
}

func TestWidgetHandler_Update_Errors(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.expectSaves()
	createWidget(t, ts, `{"location":"Paris"}`)

	rec := ts.do(t, http.MethodPut, "/api/widgets/widget-1", `{"units":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/widgets/missing", `{"units":"C"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWidgetHandler_Delete(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.expectSaves()
	ts.repo.EXPECT().Delete(mock.Anything, "widget-1").Return(nil).Once()

	createWidget(t, ts, `{"location":"Paris"}`)
	w, err := ts.widget.Get("widget-1")
	require.NoError(t, err)

	rec := ts.do(t, http.MethodDelete, "/api/widgets/widget-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, w.Stopped())

	rec = ts.do(t, http.MethodGet, "/api/widgets/widget-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/widgets/widget-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWidgetHandler_Reload(t *testing.T) {
	loader := &stubLoader{obs: parisObservation()}
	ts := newTestServer(t, loader, nil)
	ts.expectSaves()
	createWidget(t, ts, `{"location":"Paris"}`)

	rec := ts.do(t, http.MethodPost, "/api/widgets/widget-1/reload?wait=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ReloadResponse](t, rec)
	assert.True(t, resp.Reloading)
	assert.Equal(t, 2, loader.calls())

	loader.mu.Lock()
	loader.err = errors.NewLocationNotFoundError("no provider could resolve Paris", nil)
	loader.mu.Unlock()

	rec = ts.do(t, http.MethodPost, "/api/widgets/widget-1/reload?wait=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[ReloadResponse](t, rec).Widget.View
	assert.True(t, view.Failed())
	assert.Equal(t, "Paris", view.Location, "best known name survives a failed load")
	assert.Equal(t, "--°", view.TemperatureLabel)

	rec = ts.do(t, http.MethodPost, "/api/widgets/widget-1/reload", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/widgets/missing/reload", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWidgetHandler_Stream(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)
	ts.expectSaves()
	ts.repo.EXPECT().Delete(mock.Anything, "widget-1").Return(nil).Once()
	createWidget(t, ts, `{"location":"Paris"}`)

	server := httptest.NewServer(ts.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/widgets/widget-1/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	event, view := readEvent(t, reader)
	assert.Equal(t, "view", event)
	assert.Equal(t, "widget-1", view.WidgetID)
	assert.Equal(t, "72°F", view.TemperatureLabel)

	// deleting the widget closes the stream
	require.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/widgets/widget-1", "").Code)
	_, err = reader.ReadString('\n')
	for err == nil {
		_, err = reader.ReadString('\n')
	}
	assert.NoError(t, ctx.Err(), "stream ended before the client timeout")
}

func TestWidgetHandler_Stream_NotFound(t *testing.T) {
	ts := newTestServer(t, &stubLoader{obs: parisObservation()}, nil)

	rec := ts.do(t, http.MethodGet, "/api/widgets/missing/stream", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func readEvent(t *testing.T, reader *bufio.Reader) (string, widget.View) {
	t.Helper()
	var event string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			var view widget.View
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &view))
			return event, view
		}
	}
}
