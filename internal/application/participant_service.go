package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/communityforge/events-api/internal/domain/entity"
	repo "github.com/communityforge/events-api/internal/domain/repository"
)

type ParticipantService struct {
	Repo   repo.ParticipantRepository
	Events repo.EventRepository
	Logger *logrus.Logger
}

func NewParticipantService(r repo.ParticipantRepository, events repo.EventRepository, logger *logrus.Logger) *ParticipantService {
	return &ParticipantService{Repo: r, Events: events, Logger: logger}
}

type ParticipantInput struct {
	Event  string
	Name   string
	Email  string
	Status string
}

type ParticipantUpdate struct {
	Event  *string
	Name   *string
	Email  *string
	Status *string
}

// Create confirms the referenced event exists before persisting. The check is
// point-in-time only; the event may be deleted later without touching the
// participant.
func (s *ParticipantService) Create(ctx context.Context, in ParticipantInput) (*entity.Participant, error) {
	exists, err := s.Events.Exists(ctx, in.Event)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidEventID
	}

	p := &entity.Participant{
		EventID: in.Event,
		Name:    in.Name,
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Status:  in.Status,
	}
	if p.Status == "" {
		p.Status = entity.ParticipantStatusRegistered
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	// Reload for the embedded event summary.
	return s.GetByID(ctx, p.ID)
}

func (s *ParticipantService) List(ctx context.Context) ([]entity.Participant, error) {
	return s.Repo.List(ctx)
}

func (s *ParticipantService) GetByID(ctx context.Context, id string) (*entity.Participant, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update re-validates the event reference only when it is being changed.
func (s *ParticipantService) Update(ctx context.Context, id string, in ParticipantUpdate) (*entity.Participant, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Event != nil && *in.Event != p.EventID {
		exists, err := s.Events.Exists(ctx, *in.Event)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrInvalidEventID
		}
		p.EventID = *in.Event
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ParticipantService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}
	return nil
}
