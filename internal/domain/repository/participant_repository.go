package repository

import (
	"context"

	"github.com/communityforge/events-api/internal/domain/entity"
)

// ParticipantRepository defines the interface for participant store
// operations. List and GetByID include the event summary projection when the
// referenced event still exists.
type ParticipantRepository interface {
	Create(ctx context.Context, p *entity.Participant) error
	List(ctx context.Context) ([]entity.Participant, error)
	GetByID(ctx context.Context, id string) (*entity.Participant, error)
	Update(ctx context.Context, p *entity.Participant) error
	Delete(ctx context.Context, id string) error
}
