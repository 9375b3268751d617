package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func widgetData(id, location string, createdAt time.Time) *ports.WidgetData {
	return &ports.WidgetData{
		ID:        id,
		Location:  location,
		Units:     ports.UnitsFahrenheit,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestWidgetRepository_SaveAndFind(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, widgetData("w-1", "Brentwood, CA", created)))

	found, err := repo.FindByID(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, "Brentwood, CA", found.Location)
	assert.Equal(t, ports.UnitsFahrenheit, found.Units)
	assert.True(t, created.Equal(found.CreatedAt))
}

func TestWidgetRepository_Save_Overwrites(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, widgetData("w-1", "Paris", created)))

	updated := widgetData("w-1", "Tokyo", created)
	updated.Units = ports.UnitsCelsius
	updated.UpdatedAt = created.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, updated))

	found, err := repo.FindByID(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", found.Location)
	assert.Equal(t, ports.UnitsCelsius, found.Units)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestWidgetRepository_Save_Validation(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))

	assert.True(t, errors.IsValidationError(repo.Save(context.Background(), nil)))
	assert.True(t, errors.IsValidationError(repo.Save(context.Background(), &ports.WidgetData{Location: "Paris"})))
}

func TestWidgetRepository_FindByID_NotFound(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByID(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestWidgetRepository_FindAll_OldestFirst(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, widgetData("c", "Tokyo", base.Add(2*time.Minute))))
	require.NoError(t, repo.Save(ctx, widgetData("a", "Paris", base)))
	require.NoError(t, repo.Save(ctx, widgetData("b", "London", base.Add(time.Minute))))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestWidgetRepository_Delete(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, widgetData("w-1", "Paris", created)))
	require.NoError(t, repo.Delete(ctx, "w-1"))

	_, err := repo.FindByID(ctx, "w-1")
	assert.True(t, errors.IsNotFoundError(err))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, "w-1")))
	assert.True(t, errors.IsValidationError(repo.Delete(ctx, "")))
}

func TestWidgetRepository_SaveRevivesDeleted(t *testing.T) {
	repo := NewWidgetRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, widgetData("w-1", "Paris", created)))
	require.NoError(t, repo.Delete(ctx, "w-1"))
	require.NoError(t, repo.Save(ctx, widgetData("w-1", "Rome", created)))

	found, err := repo.FindByID(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, "Rome", found.Location)
}

func TestOpen_SQLiteFile(t *testing.T) {
	path := t.TempDir() + "/nested/widgets.db"

	db, err := Open(config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, SQLitePath: path})
	require.NoError(t, err)

	repo := NewWidgetRepositoryAdapter(db)
	require.NoError(t, repo.Save(context.Background(), widgetData("w-1", "Paris", time.Now())))
	require.NoError(t, Close(db))

	db, err = Open(config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer func() { _ = Close(db) }()

	found, err := NewWidgetRepositoryAdapter(db).FindByID(context.Background(), "w-1")
	require.NoError(t, err)
	assert.Equal(t, "Paris", found.Location)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})
	assert.True(t, errors.IsConfigurationError(err))
}
