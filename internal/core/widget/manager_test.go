package widget

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

func newTestManager(t *testing.T, repo *mocks.WidgetRepository, loader Loader) *Manager {
	t.Helper()
	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetWidgetConfig().Return(ports.WidgetConfig{
		DefaultUnits:    ports.UnitsFahrenheit,
		ClockInterval:   time.Hour,
		RefreshInterval: 0,
	}).Maybe()

	seq := 0
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	m, err := NewManager(ManagerDependencies{
		Loader:     loader,
		Repository: repo,
		Config:     cfg,
		Logger:     mocks.NewPermissiveLogger(t),
		Metrics:    mocks.NewPermissiveMetrics(t),
		Now: func() time.Time {
			return base
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("widget-%d", seq)
		},
	})
	require.NoError(t, err)
	t.Cleanup(m.StopAll)
	return m
}

func TestManager_CreateGetList(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.ID == "widget-1" && d.Location == "94513" && d.Units == ports.UnitsFahrenheit
	})).Return(nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.ID == "widget-2" && d.Location == "Tokyo, Japan" && d.Units == ports.UnitsCelsius
	})).Return(nil).Once()

	loader := &fakeLoader{obs: clearObservation()}
	m := newTestManager(t, repo, loader)

	first, err := m.Create(context.Background(), Attributes{Location: " 94513 "})
	require.NoError(t, err)
	second, err := m.Create(context.Background(), Attributes{Location: "Tokyo, Japan", Units: "c"})
	require.NoError(t, err)

	got, err := m.Get(first.ID())
	require.NoError(t, err)
	assert.Same(t, first, got)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, "widget-1", list[0].ID())
	assert.Equal(t, "widget-2", list[1].ID())
	assert.Equal(t, ports.UnitsCelsius, second.Attributes().Units)
	assert.Equal(t, 2, m.Count())

	require.Eventually(t, func() bool { return loader.calls() == 2 }, time.Second, 5*time.Millisecond)
}

func TestManager_CreateValidation(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	m := newTestManager(t, repo, &fakeLoader{obs: clearObservation()})

	_, err := m.Create(context.Background(), Attributes{Location: "   "})
	assert.True(t, errors.IsValidationError(err))

	_, err = m.Create(context.Background(), Attributes{Location: "Paris", Units: "K"})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 0, m.Count())
}

func TestManager_CreateRepositoryFailure(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.NewDatabaseError("disk full", nil))
	m := newTestManager(t, repo, &fakeLoader{obs: clearObservation()})

	_, err := m.Create(context.Background(), Attributes{Location: "Paris"})
	assert.True(t, errors.IsDatabaseError(err))
	assert.Equal(t, 0, m.Count())
}

func TestManager_GetUnknown(t *testing.T) {
	m := newTestManager(t, mocks.NewWidgetRepository(t), &fakeLoader{})

	_, err := m.Get("missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestManager_Update(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.Location == "94513"
	})).Return(nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.WidgetData) bool {
		return d.ID == "widget-1" && d.Location == "94513" && d.Units == ports.UnitsCelsius
	})).Return(nil).Once()

	loader := &fakeLoader{obs: clearObservation()}
	m := newTestManager(t, repo, loader)

	w, err := m.Create(context.Background(), Attributes{Location: "94513"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return !w.Loading() && loader.calls() == 1 }, time.Second, 5*time.Millisecond)

	// empty location keeps the current one
	updated, reloading, err := m.Update(context.Background(), w.ID(), Attributes{Units: ports.UnitsCelsius})
	require.NoError(t, err)
	assert.True(t, reloading)
	assert.Equal(t, Attributes{Location: "94513", Units: ports.UnitsCelsius}, updated.Attributes())

	require.Eventually(t, func() bool { return !w.Loading() && loader.calls() == 2 }, time.Second, 5*time.Millisecond)

	// unchanged attributes neither persist nor reload
	_, reloading, err = m.Update(context.Background(), w.ID(), Attributes{Location: "94513", Units: "C"})
	require.NoError(t, err)
	assert.False(t, reloading)

	_, _, err = m.Update(context.Background(), "missing", Attributes{Location: "Oslo"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestManager_Delete(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().Delete(mock.Anything, "widget-1").Return(nil).Once()

	m := newTestManager(t, repo, &fakeLoader{obs: clearObservation()})
	w, err := m.Create(context.Background(), Attributes{Location: "94513"})
	require.NoError(t, err)

	require.NoError(t, m.Delete(context.Background(), w.ID()))
	assert.True(t, w.Stopped())
	assert.Equal(t, 0, m.Count())

	assert.True(t, errors.IsNotFoundError(m.Delete(context.Background(), w.ID())))
}

func TestManager_Restore(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	created := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	repo.EXPECT().FindAll(mock.Anything).Return([]*ports.WidgetData{
		{ID: "a", Location: "94513", Units: ports.UnitsFahrenheit, CreatedAt: created},
		{ID: "b", Location: "Paris", Units: "", CreatedAt: created.Add(time.Hour)},
		{ID: "c", Location: "  ", Units: ports.UnitsCelsius, CreatedAt: created},
	}, nil)

	loader := &fakeLoader{obs: clearObservation()}
	m := newTestManager(t, repo, loader)

	count, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID())
	assert.Equal(t, created, list[0].CreatedAt())
	assert.Equal(t, ports.UnitsFahrenheit, list[1].Attributes().Units)

	require.Eventually(t, func() bool { return loader.calls() == 2 }, time.Second, 5*time.Millisecond)
}

func TestManager_RestoreFailure(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	repo.EXPECT().FindAll(mock.Anything).Return(nil, errors.NewDatabaseError("no such table", nil))

	m := newTestManager(t, repo, &fakeLoader{})
	_, err := m.Restore(context.Background())
	assert.True(t, errors.IsDatabaseError(err))
}

func TestManager_StopAll(t *testing.T) {
	repo := mocks.NewWidgetRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	m := newTestManager(t, repo, &fakeLoader{obs: clearObservation()})
	w, err := m.Create(context.Background(), Attributes{Location: "94513"})
	require.NoError(t, err)

	m.StopAll()
	assert.True(t, w.Stopped())
	assert.Equal(t, 0, m.Count())
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager(ManagerDependencies{})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewManager(ManagerDependencies{Loader: &fakeLoader{}})
	assert.True(t, errors.IsValidationError(err))
}
