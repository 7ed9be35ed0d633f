package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yoga-studio/internal/domain"
)

// TeacherRepository define el contrato de persistencia para instructores.
type TeacherRepository interface {
	List(ctx context.Context) ([]domain.Teacher, error)
	GetByID(ctx context.Context, id string) (domain.Teacher, error)
}

// PgTeacherRepository implementa TeacherRepository usando pgxpool.
type PgTeacherRepository struct {
	pool *pgxpool.Pool
}

func NewPgTeacherRepository(pool *pgxpool.Pool) *PgTeacherRepository {
	return &PgTeacherRepository{pool: pool}
}

func (r *PgTeacherRepository) List(ctx context.Context) ([]domain.Teacher, error) {
	const query = `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers
		ORDER BY last_name, first_name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := make([]domain.Teacher, 0)
	for rows.Next() {
		var t domain.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (r *PgTeacherRepository) GetByID(ctx context.Context, id string) (domain.Teacher, error) {
	const query = `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`
	var t domain.Teacher
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Teacher{}, err
	}
	return t, err
}
