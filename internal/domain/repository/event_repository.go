package repository

import (
	"context"

	"github.com/communityforge/events-api/internal/domain/entity"
)

// EventRepository defines the interface for event store operations.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	List(ctx context.Context) ([]entity.Event, error)
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	Update(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
