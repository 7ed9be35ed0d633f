package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yoga-studio/internal/domain"
)

// SessionRepository define el contrato de persistencia para sesiones de yoga.
// El conjunto de participantes vive en la tabla asociativa session_participants.
type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetByID(ctx context.Context, id string) (domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Update(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, sessionID, userID string) error
	RemoveParticipant(ctx context.Context, sessionID, userID string) error
}

// PgSessionRepository implementa SessionRepository usando pgxpool.
type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.Session) error {
	const query = `
		INSERT INTO sessions (id, name, description, date, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.Name,
		session.Description,
		session.Date,
		session.TeacherID,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

func (r *PgSessionRepository) GetByID(ctx context.Context, id string) (domain.Session, error) {
	const query = `
		SELECT id, name, description, date, teacher_id, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`
	var s domain.Session
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Date,
		&s.TeacherID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, pgx.ErrNoRows
		}
		return domain.Session{}, err
	}

	s.Participants, err = r.listParticipants(ctx, id)
	return s, err
}

func (r *PgSessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	const query = `
		SELECT id, name, description, date, teacher_id, created_at, updated_at
		FROM sessions
		ORDER BY date
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Date, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sessions {
		participants, err := r.listParticipants(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Participants = participants
	}
	return sessions, nil
}

func (r *PgSessionRepository) Update(ctx context.Context, session domain.Session) error {
	const query = `
		UPDATE sessions
		SET name = $2, description = $3, date = $4, teacher_id = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		session.ID,
		session.Name,
		session.Description,
		session.Date,
		session.TeacherID,
		session.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgSessionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgSessionRepository) AddParticipant(ctx context.Context, sessionID, userID string) error {
	// ON CONFLICT preserva la unicidad del par aunque dos requests compitan.
	const query = `
		INSERT INTO session_participants (session_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, user_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, sessionID, userID, time.Now().UTC())
	return err
}

func (r *PgSessionRepository) RemoveParticipant(ctx context.Context, sessionID, userID string) error {
	const query = `DELETE FROM session_participants WHERE session_id = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, sessionID, userID)
	return err
}

func (r *PgSessionRepository) listParticipants(ctx context.Context, sessionID string) ([]string, error) {
	const query = `
		SELECT user_id
		FROM session_participants
		WHERE session_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
