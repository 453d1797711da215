package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/communityforge/events-api/internal/domain/entity"
	repo "github.com/communityforge/events-api/internal/domain/repository"
)

type EventService struct {
	Repo   repo.EventRepository
	Logger *logrus.Logger
}

func NewEventService(r repo.EventRepository, logger *logrus.Logger) *EventService {
	return &EventService{Repo: r, Logger: logger}
}

// EventInput carries a validated create payload. Zero values for type,
// capacity, status, and tags fall back to the schema defaults.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Organizer   string
	Type        string
	Capacity    int
	Status      string
	Tags        []string
}

// EventUpdate carries a partial update; nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Organizer   *string
	Type        *string
	Capacity    *int
	Status      *string
	Tags        *[]string
}

func (s *EventService) Create(ctx context.Context, in EventInput) (*entity.Event, error) {
	e := &entity.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Organizer:   in.Organizer,
		Type:        in.Type,
		Capacity:    in.Capacity,
		Status:      in.Status,
		Tags:        in.Tags,
	}
	if e.Type == "" {
		e.Type = entity.EventTypeOther
	}
	if e.Capacity == 0 {
		e.Capacity = 1
	}
	if e.Status == "" {
		e.Status = entity.EventStatusDraft
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) List(ctx context.Context) ([]entity.Event, error) {
	return s.Repo.List(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EventService) Update(ctx context.Context, id string, in EventUpdate) (*entity.Event, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Organizer != nil {
		e.Organizer = *in.Organizer
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Capacity != nil {
		e.Capacity = *in.Capacity
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Tags != nil {
		e.Tags = *in.Tags
	}
	if err := s.Repo.Update(ctx, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}
