// Package widget runs weather widget instances: one load cycle at a time per
// instance, a clock tick that keeps day/night and local time current, and a
// periodic refetch.
package widget

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	DefaultClockInterval   = time.Minute
	DefaultRefreshInterval = 15 * time.Minute
	DefaultLoadTimeout     = 30 * time.Second

	subscriberBuffer = 1
)

// Loader runs one weather load cycle
type Loader interface {
	LoadObservation(ctx context.Context, request weather.LoadRequest) (*weather.Observation, error)
}

// Attributes are the widget's configuration surface
type Attributes struct {
	Location string      `json:"location"`
	Units    ports.Units `json:"units"`
}

// Options tunes timers and the time source
type Options struct {
	ClockInterval time.Duration
	// RefreshInterval of zero disables periodic refetching
	RefreshInterval time.Duration
	LoadTimeout     time.Duration
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ClockInterval <= 0 {
		o.ClockInterval = DefaultClockInterval
	}
	if o.RefreshInterval < 0 {
		o.RefreshInterval = 0
	}
	if o.LoadTimeout <= 0 {
		o.LoadTimeout = DefaultLoadTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Widget is a single weather widget instance. At most one load cycle runs at
// a time; a reload requested while one is in flight is dropped.
type Widget struct {
	id        string
	createdAt time.Time
	loader    Loader
	clock     *clock.Clock
	logger    ports.Logger
	metrics   ports.MetricsCollector
	opts      Options

	loading atomic.Bool
	stopped atomic.Bool

	mu        sync.RWMutex
	attrs     Attributes
	updatedAt time.Time
	last      *weather.Observation
	knownName string
	knownZone string
	view      View
	subs      map[chan View]struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

type Dependencies struct {
	Loader  Loader
	Clock   *clock.Clock
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

// New creates a stopped widget; call Start to begin loading and ticking
func New(id string, attrs Attributes, createdAt time.Time, deps Dependencies, opts Options) *Widget {
	opts = opts.withDefaults()
	clk := deps.Clock
	if clk == nil {
		clk = clock.New(clock.WithLogger(deps.Logger))
	}

	w := &Widget{
		id:        id,
		createdAt: createdAt,
		loader:    deps.Loader,
		clock:     clk,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		opts:      opts,
		attrs:     attrs,
		updatedAt: createdAt,
		subs:      make(map[chan View]struct{}),
		stopCh:    make(chan struct{}),
	}
	w.view = w.pendingView(opts.Now())
	return w
}

func (w *Widget) ID() string { return w.id }

func (w *Widget) CreatedAt() time.Time { return w.createdAt }

// UpdatedAt is when the attributes last changed
func (w *Widget) UpdatedAt() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.updatedAt
}

func (w *Widget) Attributes() Attributes {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.attrs
}

// View returns the latest published view
func (w *Widget) View() View {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.view
}

// Loading reports whether a load cycle is in flight
func (w *Widget) Loading() bool {
	return w.loading.Load()
}

// Stopped reports whether Stop has been called
func (w *Widget) Stopped() bool {
	return w.stopped.Load()
}

// Start triggers the first load and starts both timers
func (w *Widget) Start() {
	w.startOnce.Do(func() {
		if w.stopped.Load() {
			return
		}
		w.wg.Add(1)
		go w.run()
		w.TriggerReload()
	})
}

// Stop cancels both timers and closes subscriber channels. A load already in
// flight is not interrupted, but its result is discarded.
func (w *Widget) Stop() {
	w.stopOnce.Do(func() {
		w.stopped.Store(true)
		close(w.stopCh)
		w.wg.Wait()

		w.mu.Lock()
		for ch := range w.subs {
			close(ch)
		}
		w.subs = make(map[chan View]struct{})
		w.mu.Unlock()

		w.logger.Debug("Widget stopped", ports.F("widget_id", w.id))
	})
}

func (w *Widget) run() {
	defer w.wg.Done()

	clockTicker := time.NewTicker(w.opts.ClockInterval)
	defer clockTicker.Stop()

	var refresh <-chan time.Time
	if w.opts.RefreshInterval > 0 {
		refreshTicker := time.NewTicker(w.opts.RefreshInterval)
		defer refreshTicker.Stop()
		refresh = refreshTicker.C
	}

	for {
		select {
		case <-w.stopCh:
			return
		case <-clockTicker.C:
			w.Tick()
		case <-refresh:
			w.TriggerReload()
		}
	}
}

// Update applies new attributes and, when they changed, starts a reload. It
// reports whether a reload was started; a dropped reload is healed by the
// next refresh tick.
func (w *Widget) Update(attrs Attributes) bool {
	w.mu.Lock()
	if attrs == w.attrs {
		w.mu.Unlock()
		return false
	}
	w.attrs = attrs
	w.updatedAt = w.opts.Now()
	w.mu.Unlock()

	return w.TriggerReload()
}

// TriggerReload starts a load cycle in the background. It returns false when
// the widget is stopped or a cycle is already running.
func (w *Widget) TriggerReload() bool {
	if !w.acquire() {
		return false
	}

	go func() {
		defer w.loading.Store(false)
		ctx, cancel := context.WithTimeout(context.Background(), w.opts.LoadTimeout)
		defer cancel()
		w.load(ctx)
	}()
	return true
}

// Reload runs a load cycle and waits for it. It returns false without
// loading when another cycle is in flight.
func (w *Widget) Reload(ctx context.Context) bool {
	if !w.acquire() {
		return false
	}
	defer w.loading.Store(false)

	ctx, cancel := context.WithTimeout(ctx, w.opts.LoadTimeout)
	defer cancel()
	w.load(ctx)
	return true
}

func (w *Widget) acquire() bool {
	if w.stopped.Load() {
		return false
	}
	if !w.loading.CompareAndSwap(false, true) {
		w.metrics.RecordReloadDropped()
		w.logger.Debug("Reload dropped, load already in flight", ports.F("widget_id", w.id))
		return false
	}
	return true
}

func (w *Widget) load(ctx context.Context) {
	attrs := w.Attributes()
	obs, err := w.loader.LoadObservation(ctx, weather.LoadRequest{
		Location: attrs.Location,
		Units:    attrs.Units,
	})
	if err == nil && obs == nil {
		err = errors.NewInvalidWeatherPayloadError("load returned no observation", nil)
	}

	if w.stopped.Load() {
		w.logger.Debug("Discarding load result for stopped widget", ports.F("widget_id", w.id))
		return
	}

	now := w.opts.Now()
	w.mu.Lock()
	if err != nil {
		w.logger.Warn("Widget load failed",
			ports.F("widget_id", w.id),
			ports.F("location", attrs.Location),
			ports.F("error", err))
		w.view = ErrorView(w.knownName, attrs.Location, w.knownZone, attrs.Units, err, w.clock, now)
	} else {
		w.last = obs
		w.knownName = obs.Location.DisplayName
		w.knownZone = obs.Location.TimezoneID
		w.view = Compose(obs, w.clock, now)
	}
	w.view.WidgetID = w.id
	view := w.view
	w.mu.Unlock()

	w.publish(view)
}

// Tick refreshes local time and day/night from the cached observation
// without touching the network
func (w *Widget) Tick() {
	if w.stopped.Load() {
		return
	}

	now := w.opts.Now()
	w.mu.Lock()
	before := w.view
	w.view = retime(w.view, w.last, w.clock, now)
	changed := before.LocalTime != w.view.LocalTime || before.IsNight != w.view.IsNight
	view := w.view
	w.mu.Unlock()

	if changed {
		w.publish(view)
	}
}

// Subscribe returns a channel receiving every published view, starting with
// the current one, and a function that unsubscribes. Slow subscribers only
// see the latest view.
func (w *Widget) Subscribe() (<-chan View, func()) {
	ch := make(chan View, subscriberBuffer)

	w.mu.Lock()
	if w.stopped.Load() {
		w.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	w.subs[ch] = struct{}{}
	ch <- w.view
	w.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if _, ok := w.subs[ch]; ok {
				delete(w.subs, ch)
				close(ch)
			}
		})
	}
}

func (w *Widget) publish(view View) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for ch := range w.subs {
		select {
		case ch <- view:
		default:
			// replace the stale pending view
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- view:
			default:
			}
		}
	}
}

func (w *Widget) pendingView(now time.Time) View {
	return View{
		WidgetID:         w.id,
		Location:         BestKnownName("", w.attrs.Location),
		TemperatureLabel: placeholderTemperature,
		Units:            w.attrs.Units,
		ConditionLabel:   "Loading",
		LocalTime:        w.clock.LocalTimeLabel("", now),
		IsNight:          w.clock.IsNight("", now, nil),
		UpdatedAt:        now,
	}
}
