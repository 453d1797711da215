package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/communityforge/events-api/internal/domain/entity"
	"github.com/communityforge/events-api/internal/domain/repository"
)

// In-memory repositories mirroring the Postgres implementations closely
// enough for service-level tests.

type memUserRepo struct {
	users    map[string]*entity.User // keyed by lowercase email
	failWith error                   // when set, every call fails with it
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memEventRepo struct {
	events map[string]*entity.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: map[string]*entity.Event{}}
}

func (r *memEventRepo) Create(_ context.Context, e *entity.Event) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) List(_ context.Context) ([]entity.Event, error) {
	out := make([]entity.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memEventRepo) GetByID(_ context.Context, id string) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) Update(_ context.Context, e *entity.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	e.UpdatedAt = time.Now()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *memEventRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.events[id]
	return ok, nil
}

type memParticipantRepo struct {
	events       *memEventRepo
	participants map[string]*entity.Participant
	order        []string // insertion order, newest appended last
}

func newMemParticipantRepo(events *memEventRepo) *memParticipantRepo {
	return &memParticipantRepo{events: events, participants: map[string]*entity.Participant{}}
}

func (r *memParticipantRepo) Create(_ context.Context, p *entity.Participant) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	cp.Event = nil
	r.participants[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memParticipantRepo) List(_ context.Context) ([]entity.Participant, error) {
	out := make([]entity.Participant, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.participants[r.order[i]]; ok {
			out = append(out, r.withEvent(p))
		}
	}
	return out, nil
}

func (r *memParticipantRepo) GetByID(_ context.Context, id string) (*entity.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := r.withEvent(p)
	return &cp, nil
}

func (r *memParticipantRepo) Update(_ context.Context, p *entity.Participant) error {
	if _, ok := r.participants[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	cp.Event = nil
	r.participants[p.ID] = &cp
	return nil
}

func (r *memParticipantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.participants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.participants, id)
	return nil
}

// withEvent emulates the LEFT JOIN projection: the summary is present only
// while the referenced event still exists.
func (r *memParticipantRepo) withEvent(p *entity.Participant) entity.Participant {
	cp := *p
	if e, ok := r.events.events[p.EventID]; ok {
		cp.Event = &entity.EventSummary{ID: e.ID, Title: e.Title, Date: e.Date, Location: e.Location, Status: e.Status}
	}
	return cp
}

var (
	_ repository.UserRepository        = (*memUserRepo)(nil)
	_ repository.EventRepository       = (*memEventRepo)(nil)
	_ repository.ParticipantRepository = (*memParticipantRepo)(nil)
)
