package widget

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/condition"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
	mocks "weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

type fakeLoader struct {
	mu       sync.Mutex
	obs      *weather.Observation
	err      error
	block    chan struct{}
	started  chan struct{}
	requests []weather.LoadRequest
}

func (f *fakeLoader) LoadObservation(ctx context.Context, req weather.LoadRequest) (*weather.Observation, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	block, started := f.block, f.started
	obs, err := f.obs, f.err
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return obs, nil
}

func (f *fakeLoader) set(obs *weather.Observation, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs, f.err = obs, err
}

func (f *fakeLoader) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type testTime struct {
	mu  sync.Mutex
	now time.Time
}

func (tt *testTime) Now() time.Time {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return tt.now
}

func (tt *testTime) Set(t time.Time) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.now = t
}

var la = mustZone("America/Los_Angeles")

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func clearObservation() *weather.Observation {
	return &weather.Observation{
		Temperature: 72,
		Units:       ports.UnitsFahrenheit,
		WindSpeed:   5,
		WindUnit:    "mph",
		Condition:   condition.ClassifyCode(0),
		Location: location.ResolvedLocation{
			Latitude:    37.9319,
			Longitude:   -121.6958,
			DisplayName: "Brentwood",
			TimezoneID:  "America/Los_Angeles",
			Source:      location.SourceStatic,
		},
		Provider: "openmeteo",
	}
}

func newTestWidget(t *testing.T, loader Loader, tt *testTime, metrics ports.MetricsCollector) *Widget {
	t.Helper()
	if metrics == nil {
		metrics = mocks.NewPermissiveMetrics(t)
	}
	w := New("w-1", Attributes{Location: "94513", Units: ports.UnitsFahrenheit}, tt.Now(), Dependencies{
		Loader:  loader,
		Clock:   clock.New(clock.WithHostLocation(time.UTC)),
		Logger:  mocks.NewPermissiveLogger(t),
		Metrics: metrics,
	}, Options{
		ClockInterval:   time.Hour,
		RefreshInterval: 0,
		Now:             tt.Now,
	})
	t.Cleanup(w.Stop)
	return w
}

func TestWidget_ReloadPublishesView(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{obs: clearObservation()}
	w := newTestWidget(t, loader, tt, nil)

	require.True(t, w.Reload(context.Background()))

	view := w.View()
	assert.Equal(t, "w-1", view.WidgetID)
	assert.Equal(t, "Brentwood", view.Location)
	assert.Equal(t, "72°F", view.TemperatureLabel)
	assert.Equal(t, "Sunny", view.ConditionLabel)
	assert.Equal(t, condition.VisualSunny, view.VisualClass)
	assert.Equal(t, condition.EffectSun, view.Effect)
	assert.False(t, view.IsNight)
	assert.Equal(t, "12:00 PM", view.LocalTime)
	assert.Equal(t, "5 mph", view.Wind)
	assert.False(t, view.Failed())
	assert.Equal(t, []weather.LoadRequest{{Location: "94513", Units: ports.UnitsFahrenheit}}, loader.requests)
}

func TestWidget_ReloadDroppedWhileInFlight(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{
		obs:     clearObservation(),
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordReloadDropped().Times(2)
	w := newTestWidget(t, loader, tt, metrics)

	require.True(t, w.TriggerReload())
	<-loader.started
	assert.True(t, w.Loading())

	assert.False(t, w.Reload(context.Background()))
	assert.False(t, w.TriggerReload())

	close(loader.block)
	require.Eventually(t, func() bool { return !w.Loading() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, loader.calls())
	assert.Equal(t, "Brentwood", w.View().Location)
}

func TestWidget_FailedLoadShowsSentinel(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{err: errors.NewLocationNotFoundError("could not resolve", nil)}
	w := New("w-2", Attributes{Location: "Springfield, Nowhere", Units: ports.UnitsCelsius}, tt.Now(), Dependencies{
		Loader:  loader,
		Clock:   clock.New(clock.WithHostLocation(time.UTC)),
		Logger:  mocks.NewPermissiveLogger(t),
		Metrics: mocks.NewPermissiveMetrics(t),
	}, Options{Now: tt.Now})
	defer w.Stop()

	require.True(t, w.Reload(context.Background()))

	view := w.View()
	assert.True(t, view.Failed())
	assert.Equal(t, "--°", view.TemperatureLabel)
	assert.Equal(t, "Unable to load", view.ConditionLabel)
	assert.Equal(t, "Springfield", view.Location)
	assert.Nil(t, view.Temperature)
	assert.Contains(t, view.Error, "could not resolve")
}

func TestWidget_FailedLoadKeepsLastKnownName(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{obs: clearObservation()}
	w := newTestWidget(t, loader, tt, nil)

	require.True(t, w.Reload(context.Background()))
	loader.set(nil, errors.NewProviderUnavailableError("all weather providers failed", nil))
	require.True(t, w.Reload(context.Background()))

	view := w.View()
	assert.True(t, view.Failed())
	assert.Equal(t, "Brentwood", view.Location)
	assert.Equal(t, "America/Los_Angeles", view.TimezoneID)
	assert.Equal(t, "12:00 PM", view.LocalTime)
}

func TestWidget_TickFlipsToNight(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 18, 59, 0, 0, la)}
	loader := &fakeLoader{obs: clearObservation()}
	w := newTestWidget(t, loader, tt, nil)

	require.True(t, w.Reload(context.Background()))
	assert.Equal(t, "Sunny", w.View().ConditionLabel)

	tt.Set(time.Date(2024, time.June, 1, 19, 0, 0, 0, la))
	w.Tick()

	view := w.View()
	assert.True(t, view.IsNight)
	assert.Equal(t, "Clear Night", view.ConditionLabel)
	assert.Equal(t, condition.EffectMoonStars, view.Effect)
	assert.Equal(t, "7:00 PM", view.LocalTime)
	assert.Equal(t, 1, loader.calls())
}

func TestWidget_TickUsesAstronomyWindow(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 19, 30, 0, 0, la)}
	obs := clearObservation()
	obs.Astronomy = &clock.AstronomyWindow{Sunrise: "5:48 AM", Sunset: "8:31 PM"}
	loader := &fakeLoader{obs: obs}
	w := newTestWidget(t, loader, tt, nil)

	require.True(t, w.Reload(context.Background()))
	assert.False(t, w.View().IsNight)

	tt.Set(time.Date(2024, time.June, 1, 20, 31, 0, 0, la))
	w.Tick()
	assert.True(t, w.View().IsNight)
}

func TestWidget_StopDiscardsInFlightResult(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{
		obs:     clearObservation(),
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	w := newTestWidget(t, loader, tt, nil)
	before := w.View()

	require.True(t, w.TriggerReload())
	<-loader.started
	w.Stop()
	close(loader.block)

	require.Eventually(t, func() bool { return !w.Loading() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, before, w.View())
	assert.True(t, w.Stopped())
	assert.False(t, w.TriggerReload())
}

func TestWidget_UpdateTriggersReloadOnlyOnChange(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{obs: clearObservation()}
	w := newTestWidget(t, loader, tt, nil)

	assert.False(t, w.Update(Attributes{Location: "94513", Units: ports.UnitsFahrenheit}))

	assert.True(t, w.Update(Attributes{Location: "Tokyo", Units: ports.UnitsCelsius}))
	require.Eventually(t, func() bool { return loader.calls() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return !w.Loading() }, time.Second, 5*time.Millisecond)

	assert.Equal(t, Attributes{Location: "Tokyo", Units: ports.UnitsCelsius}, w.Attributes())
	assert.Equal(t, "Tokyo", loader.requests[0].Location)
}

func TestWidget_SubscribeReceivesViews(t *testing.T) {
	tt := &testTime{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, la)}
	loader := &fakeLoader{obs: clearObservation()}
	w := newTestWidget(t, loader, tt, nil)

	views, unsubscribe := w.Subscribe()
	defer unsubscribe()

	initial := <-views
	assert.Equal(t, "Loading", initial.ConditionLabel)

	require.True(t, w.Reload(context.Background()))
	loaded := <-views
	assert.Equal(t, "Brentwood", loaded.Location)

	w.Stop()
	_, open := <-views
	assert.False(t, open)
}

func TestWidget_StartLoadsAndTicks(t *testing.T) {
	loader := &fakeLoader{obs: clearObservation()}
	w := New("w-3", Attributes{Location: "94513", Units: ports.UnitsFahrenheit}, time.Now(), Dependencies{
		Loader:  loader,
		Logger:  mocks.NewPermissiveLogger(t),
		Metrics: mocks.NewPermissiveMetrics(t),
	}, Options{
		ClockInterval:   10 * time.Millisecond,
		RefreshInterval: 20 * time.Millisecond,
	})

	w.Start()
	require.Eventually(t, func() bool { return loader.calls() >= 2 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return w.View().Location == "Brentwood" }, time.Second, 5*time.Millisecond)

	w.Stop()
	require.Eventually(t, func() bool { return !w.Loading() }, time.Second, 5*time.Millisecond)
	calls := loader.calls()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, calls, loader.calls())
}

func TestBestKnownName(t *testing.T) {
	assert.Equal(t, "Brentwood", BestKnownName("Brentwood", "94513"))
	assert.Equal(t, "Paris", BestKnownName("", "Paris, France"))
	assert.Equal(t, "Unknown", BestKnownName(" ", " "))
}
