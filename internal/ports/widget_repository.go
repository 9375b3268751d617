package ports

import (
	"context"
	"time"
)

// WidgetData represents persisted widget attributes
type WidgetData struct {
	ID        string
	Location  string
	Units     Units
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WidgetRepository defines the contract for widget persistence
type WidgetRepository interface {
	Save(ctx context.Context, widget *WidgetData) error
	FindByID(ctx context.Context, id string) (*WidgetData, error)
	FindAll(ctx context.Context) ([]*WidgetData, error)
	Delete(ctx context.Context, id string) error
}
