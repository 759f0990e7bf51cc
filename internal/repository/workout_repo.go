package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WorkoutRepository expone la verificación de existencia de workouts.
type WorkoutRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// PgWorkoutRepository implementa WorkoutRepository usando pgxpool.
type PgWorkoutRepository struct {
	pool *pgxpool.Pool
}

func NewPgWorkoutRepository(pool *pgxpool.Pool) *PgWorkoutRepository {
	return &PgWorkoutRepository{pool: pool}
}

func (r *PgWorkoutRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
