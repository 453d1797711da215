package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communityforge/events-api/internal/domain/entity"
	"github.com/communityforge/events-api/internal/domain/repository"
)

type ParticipantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

// selectWithEvent left-joins the events table so reads survive a deleted
// event; the summary columns scan as NULL in that case.
const selectWithEvent = `
	SELECT p.id, p.event_id, p.name, p.email, p.status, p.created_at, p.updated_at,
	       e.id, e.title, e.date, e.location, e.status
	FROM participants p
	LEFT JOIN events e ON e.id = p.event_id
`

func (r *ParticipantRepository) Create(ctx context.Context, p *entity.Participant) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO participants (event_id, name, email, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.EventID, p.Name, p.Email, p.Status)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ParticipantRepository) List(ctx context.Context) ([]entity.Participant, error) {
	rows, err := r.pool.Query(ctx, selectWithEvent+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]entity.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, *p)
	}
	return participants, rows.Err()
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*entity.Participant, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, selectWithEvent+` WHERE p.id = $1`, id)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, p *entity.Participant) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.pool.Exec(ctx, `
		UPDATE participants
		SET event_id = $1, name = $2, email = $3, status = $4, updated_at = $5
		WHERE id = $6
	`, p.EventID, p.Name, p.Email, p.Status, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanParticipant(row pgx.Row) (*entity.Participant, error) {
	p := &entity.Participant{}
	var (
		evID, evTitle, evLocation, evStatus *string
		evDate                              *time.Time
	)
	if err := row.Scan(&p.ID, &p.EventID, &p.Name, &p.Email, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&evID, &evTitle, &evDate, &evLocation, &evStatus); err != nil {
		return nil, err
	}
	if evID != nil {
		p.Event = &entity.EventSummary{
			ID:       *evID,
			Title:    *evTitle,
			Date:     *evDate,
			Location: *evLocation,
			Status:   *evStatus,
		}
	}
	return p, nil
}

var _ repository.ParticipantRepository = (*ParticipantRepository)(nil)
