package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitpulse/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	AddFavorite(ctx context.Context, userID, workoutID string) error
	RemoveFavorite(ctx context.Context, userID, workoutID string) error
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	ListWorkouts(ctx context.Context, userID string) ([]domain.Workout, error)
	GetImageKey(ctx context.Context, userID string) (string, error)
	SetImageKey(ctx context.Context, userID, key string) error
	ClearImageKey(ctx context.Context, userID string) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, dob, image_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.DateOfBirth,
		user.ImageKey,
		user.CreatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
		SELECT id, name, email, password_hash, dob, image_key, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
		SELECT id, name, email, password_hash, dob, image_key, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *PgUserRepository) scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.DateOfBirth,
		&u.ImageKey,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}
	return u, err
}

func (r *PgUserRepository) AddFavorite(ctx context.Context, userID, workoutID string) error {
	// ON CONFLICT mantiene la operación idempotente.
	const query = `
		INSERT INTO user_favorites (user_id, workout_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, workout_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID, workoutID)
	return err
}

func (r *PgUserRepository) RemoveFavorite(ctx context.Context, userID, workoutID string) error {
	const query = `
		DELETE FROM user_favorites
		WHERE user_id = $1 AND workout_id = $2
	`
	_, err := r.pool.Exec(ctx, query, userID, workoutID)
	return err
}

func (r *PgUserRepository) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	const query = `
		SELECT workout_id
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgUserRepository) ListWorkouts(ctx context.Context, userID string) ([]domain.Workout, error) {
	const query = `
		SELECT w.id, w.name, w.category, w.duration_minutes, w.created_at
		FROM user_workouts uw
		JOIN workouts w ON w.id = uw.workout_id
		WHERE uw.user_id = $1
		ORDER BY uw.created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []domain.Workout{}
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Category, &w.DurationMinutes, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (r *PgUserRepository) GetImageKey(ctx context.Context, userID string) (string, error) {
	const query = `
		SELECT image_key
		FROM users
		WHERE id = $1
	`
	var key string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&key)
	return key, err
}

func (r *PgUserRepository) SetImageKey(ctx context.Context, userID, key string) error {
	const query = `
		UPDATE users
		SET image_key = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, userID, key)
	return err
}

func (r *PgUserRepository) ClearImageKey(ctx context.Context, userID string) error {
	return r.SetImageKey(ctx, userID, "")
}
