package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitpulse/internal/domain"
	"fitpulse/internal/repository"
)

// FavoritesService gestiona la relación usuario-workout favorito.
type FavoritesService struct {
	logger   *zap.Logger
	users    repository.UserRepository
	workouts repository.WorkoutRepository
}

func NewFavoritesService(logger *zap.Logger, users repository.UserRepository, workouts repository.WorkoutRepository) *FavoritesService {
	return &FavoritesService{
		logger:   logger,
		users:    users,
		workouts: workouts,
	}
}

// AddFavorite agrega un workout existente al set de favoritos.
// Repetir un favorito ya presente es un no-op exitoso.
func (s *FavoritesService) AddFavorite(ctx context.Context, userID, workoutID string) error {
	if err := s.requireWorkout(ctx, workoutID); err != nil {
		return err
	}
	return s.users.AddFavorite(ctx, userID, workoutID)
}

// RemoveFavorite quita un workout del set; quitar un no-miembro es un no-op exitoso.
func (s *FavoritesService) RemoveFavorite(ctx context.Context, userID, workoutID string) error {
	if err := s.requireWorkout(ctx, workoutID); err != nil {
		return err
	}
	return s.users.RemoveFavorite(ctx, userID, workoutID)
}

func (s *FavoritesService) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	return s.users.ListFavorites(ctx, userID)
}

// ListUserWorkouts resuelve un usuario por email y devuelve sus workouts propios.
func (s *FavoritesService) ListUserWorkouts(ctx context.Context, email string) ([]domain.Workout, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.users.ListWorkouts(ctx, user.ID)
}

func (s *FavoritesService) requireWorkout(ctx context.Context, workoutID string) error {
	if strings.TrimSpace(workoutID) == "" {
		return ErrWorkoutNotFound
	}
	exists, err := s.workouts.Exists(ctx, workoutID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrWorkoutNotFound
	}
	return nil
}
