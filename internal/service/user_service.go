package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fitpulse/internal/domain"
	"fitpulse/internal/repository"
)

// UserService coordina reglas de negocio para usuarios.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	jwt    *JWTService
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, jwtSvc *JWTService) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
		jwt:    jwtSvc,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	DOB      string
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrImageNotFound      = errors.New("image not found")
)

const minPasswordLength = 6

func (s *UserService) Signup(ctx context.Context, input SignupInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	password := input.Password

	if name == "" || email == "" || !strings.Contains(email, "@") {
		return domain.User{}, ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return domain.User{}, ErrInvalidInput
	}
	dob, err := time.Parse("2006-01-02", strings.TrimSpace(input.DOB))
	if err != nil {
		return domain.User{}, ErrInvalidInput
	}

	_, err = s.users.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, ErrUserExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashBytes),
		DateOfBirth:  dob,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login autentica por email y password y emite un token firmado.
// Email desconocido y password incorrecto responden igual.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if user.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.Generate(user)
}

// ResolveIdentity valida un token y devuelve al usuario que identifica.
func (s *UserService) ResolveIdentity(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		// El usuario pudo haber sido eliminado después de emitir el token.
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
