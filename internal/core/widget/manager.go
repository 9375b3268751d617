package widget

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"weatherwidget.app/internal/core/clock"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

// Manager owns the set of running widgets and keeps them persisted
type Manager struct {
	loader     Loader
	clock      *clock.Clock
	repository ports.WidgetRepository
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector
	now        func() time.Time
	newID      func() string

	mu      sync.RWMutex
	widgets map[string]*Widget
}

type ManagerDependencies struct {
	Loader     Loader
	Clock      *clock.Clock
	Repository ports.WidgetRepository
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	Now        func() time.Time
	NewID      func() string
}

func NewManager(deps ManagerDependencies) (*Manager, error) {
	if deps.Loader == nil {
		return nil, errors.NewValidationError("loader is required")
	}
	if deps.Repository == nil {
		return nil, errors.NewValidationError("widget repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clk := deps.Clock
	if clk == nil {
		clk = clock.New(clock.WithLogger(deps.Logger))
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return &Manager{
		loader:     deps.Loader,
		clock:      clk,
		repository: deps.Repository,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        now,
		newID:      newID,
		widgets:    make(map[string]*Widget),
	}, nil
}

// Create persists and starts a new widget
func (m *Manager) Create(ctx context.Context, attrs Attributes) (*Widget, error) {
	attrs, err := m.normalize(attrs)
	if err != nil {
		return nil, err
	}

	now := m.now()
	data := &ports.WidgetData{
		ID:        m.newID(),
		Location:  attrs.Location,
		Units:     attrs.Units,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.repository.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save widget: %w", err)
	}

	w := m.spawn(data)
	m.logger.Info("Widget created",
		ports.F("widget_id", w.ID()),
		ports.F("location", attrs.Location),
		ports.F("units", attrs.Units))
	return w, nil
}

// Get returns a running widget
func (m *Manager) Get(id string) (*Widget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.widgets[id]
	if !ok {
		return nil, errors.NewNotFoundError("widget not found: " + id)
	}
	return w, nil
}

// List returns running widgets oldest first
func (m *Manager) List() []*Widget {
	m.mu.RLock()
	list := make([]*Widget, 0, len(m.widgets))
	for _, w := range m.widgets {
		list = append(list, w)
	}
	m.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt().Equal(list[j].CreatedAt()) {
			return list[i].ID() < list[j].ID()
		}
		return list[i].CreatedAt().Before(list[j].CreatedAt())
	})
	return list
}

// Update changes a widget's attributes. The returned flag reports whether a
// reload started; false means nothing changed or a load was already running.
func (m *Manager) Update(ctx context.Context, id string, attrs Attributes) (*Widget, bool, error) {
	w, err := m.Get(id)
	if err != nil {
		return nil, false, err
	}

	current := w.Attributes()
	if strings.TrimSpace(attrs.Location) == "" {
		attrs.Location = current.Location
	}
	if strings.TrimSpace(string(attrs.Units)) == "" {
		attrs.Units = current.Units
	}
	attrs, err = m.normalize(attrs)
	if err != nil {
		return nil, false, err
	}

	if attrs != current {
		if err := m.repository.Save(ctx, &ports.WidgetData{
			ID:        id,
			Location:  attrs.Location,
			Units:     attrs.Units,
			CreatedAt: w.CreatedAt(),
			UpdatedAt: m.now(),
		}); err != nil {
			return nil, false, fmt.Errorf("save widget: %w", err)
		}
	}

	return w, w.Update(attrs), nil
}

// Delete stops a widget and removes it from storage
func (m *Manager) Delete(ctx context.Context, id string) error {
	w, err := m.Get(id)
	if err != nil {
		return err
	}
	if err := m.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete widget: %w", err)
	}

	m.mu.Lock()
	delete(m.widgets, id)
	m.mu.Unlock()

	w.Stop()
	m.logger.Info("Widget deleted", ports.F("widget_id", id))
	return nil
}

// Restore starts every persisted widget
func (m *Manager) Restore(ctx context.Context) (int, error) {
	stored, err := m.repository.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load widgets: %w", err)
	}

	restored := 0
	for _, data := range stored {
		if _, err := m.Get(data.ID); err == nil {
			continue
		}
		attrs, err := m.normalize(Attributes{Location: data.Location, Units: data.Units})
		if err != nil {
			m.logger.Warn("Skipping invalid stored widget",
				ports.F("widget_id", data.ID),
				ports.F("error", err))
			continue
		}
		data.Location, data.Units = attrs.Location, attrs.Units
		m.spawn(data)
		restored++
	}

	m.logger.Info("Widgets restored", ports.F("count", restored))
	return restored, nil
}

// StopAll stops every widget without touching storage
func (m *Manager) StopAll() {
	m.mu.Lock()
	widgets := m.widgets
	m.widgets = make(map[string]*Widget)
	m.mu.Unlock()

	for _, w := range widgets {
		w.Stop()
	}
}

// Count returns the number of running widgets
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.widgets)
}

func (m *Manager) spawn(data *ports.WidgetData) *Widget {
	cfg := m.config.GetWidgetConfig()
	w := New(data.ID, Attributes{Location: data.Location, Units: data.Units}, data.CreatedAt, Dependencies{
		Loader:  m.loader,
		Clock:   m.clock,
		Logger:  m.logger,
		Metrics: m.metrics,
	}, Options{
		ClockInterval:   cfg.ClockInterval,
		RefreshInterval: cfg.RefreshInterval,
		LoadTimeout:     cfg.LoadTimeout,
		Now:             m.now,
	})

	m.mu.Lock()
	m.widgets[data.ID] = w
	m.mu.Unlock()

	w.Start()
	return w
}

func (m *Manager) normalize(attrs Attributes) (Attributes, error) {
	loc, ok := validation.TrimAndValidate(attrs.Location)
	if !ok {
		return Attributes{}, errors.NewValidationError("location is required")
	}

	units := ports.Units(strings.ToUpper(strings.TrimSpace(string(attrs.Units))))
	if units == "" {
		units = m.config.GetWidgetConfig().DefaultUnits
	}
	if !validation.IsValidUnits(string(units)) {
		return Attributes{}, errors.NewValidationError("units must be F or C")
	}

	return Attributes{Location: loc, Units: units}, nil
}
