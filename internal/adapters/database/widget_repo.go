package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WidgetModel represents the database model for widgets
type WidgetModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Location  string `gorm:"not null"`
	Units     string `gorm:"size:1;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (WidgetModel) TableName() string {
	return "widgets"
}

// WidgetRepositoryAdapter implements the WidgetRepository port using GORM
type WidgetRepositoryAdapter struct {
	db *gorm.DB
}

// NewWidgetRepositoryAdapter creates a new widget repository adapter
func NewWidgetRepositoryAdapter(db *gorm.DB) ports.WidgetRepository {
	return &WidgetRepositoryAdapter{db: db}
}

// Save inserts the widget or overwrites the stored attributes
func (r *WidgetRepositoryAdapter) Save(ctx context.Context, widget *ports.WidgetData) error {
	if widget == nil {
		return errors.NewValidationError("widget cannot be nil")
	}
	if widget.ID == "" {
		return errors.NewValidationError("widget ID cannot be empty")
	}

	model := r.dataToModel(widget)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"location", "units", "updated_at", "deleted_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save widget", result.Error)
	}

	return nil
}

// FindByID retrieves a widget by its ID
func (r *WidgetRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.WidgetData, error) {
	if id == "" {
		return nil, errors.NewValidationError("widget ID cannot be empty")
	}

	var model WidgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("widget not found")
		}
		return nil, errors.NewDatabaseError("failed to find widget by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindAll returns every stored widget, oldest first
func (r *WidgetRepositoryAdapter) FindAll(ctx context.Context) ([]*ports.WidgetData, error) {
	var models []WidgetModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list widgets", result.Error)
	}

	widgets := make([]*ports.WidgetData, len(models))
	for i := range models {
		widgets[i] = r.modelToData(&models[i])
	}

	return widgets, nil
}

// Delete removes a widget from the database
func (r *WidgetRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("widget ID cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&WidgetModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete widget", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("widget not found")
	}

	return nil
}

// dataToModel converts port data to database model
func (r *WidgetRepositoryAdapter) dataToModel(data *ports.WidgetData) *WidgetModel {
	return &WidgetModel{
		ID:        data.ID,
		Location:  data.Location,
		Units:     string(data.Units),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *WidgetRepositoryAdapter) modelToData(model *WidgetModel) *ports.WidgetData {
	return &ports.WidgetData{
		ID:        model.ID,
		Location:  model.Location,
		Units:     ports.Units(model.Units),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
