package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitpulse/internal/repository"
)

// ObjectStore es el contrato con el almacenamiento binario externo.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	PresignedGetURL(ctx context.Context, key string) (string, error)
}

// MediaService coordina la imagen de perfil entre la base y el object store.
// Invariante: la referencia guardada nunca apunta a un objeto ya borrado.
type MediaService struct {
	logger *zap.Logger
	users  repository.UserRepository
	store  ObjectStore
	locker UserLocker
}

func NewMediaService(logger *zap.Logger, users repository.UserRepository, store ObjectStore, locker UserLocker) *MediaService {
	if locker == nil {
		locker = NewMemoryUserLocker()
	}
	return &MediaService{
		logger: logger,
		users:  users,
		store:  store,
		locker: locker,
	}
}

// UploadProfilePic sube o reemplaza la imagen del usuario.
// Orden: borrar la anterior, subir la nueva, persistir la referencia.
// Un corte a mitad deja al usuario sin imagen o un blob huérfano,
// nunca una referencia colgante.
func (s *MediaService) UploadProfilePic(ctx context.Context, userID, filename string, data []byte) error {
	unlock, err := s.locker.Lock(ctx, userID)
	if err != nil {
		return err
	}
	defer unlock()

	oldKey, err := s.users.GetImageKey(ctx, userID)
	if err != nil {
		return err
	}
	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			return err
		}
	}

	key := imageKey(userID, filename)
	if err := s.store.Upload(ctx, key, data); err != nil {
		return err
	}
	return s.users.SetImageKey(ctx, userID, key)
}

// RemoveProfilePic borra el blob y luego limpia la referencia.
func (s *MediaService) RemoveProfilePic(ctx context.Context, userID string) error {
	unlock, err := s.locker.Lock(ctx, userID)
	if err != nil {
		return err
	}
	defer unlock()

	key, err := s.users.GetImageKey(ctx, userID)
	if err != nil {
		return err
	}
	if key == "" {
		return ErrImageNotFound
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}
	return s.users.ClearImageKey(ctx, userID)
}

// GetProfilePicURL resuelve al usuario por email y devuelve una URL de lectura.
func (s *MediaService) GetProfilePicURL(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if user.ImageKey == "" {
		return "", ErrImageNotFound
	}
	return s.store.PresignedGetURL(ctx, user.ImageKey)
}

func imageKey(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s_%d%s", userID, time.Now().UnixMilli(), ext)
}
