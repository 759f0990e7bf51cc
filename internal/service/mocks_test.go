package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"fitpulse/internal/domain"
)

type mockUserRepo struct {
	mu           sync.Mutex
	usersByID    map[string]domain.User
	usersByEmail map[string]string
	favorites    map[string][]string
	workouts     map[string][]domain.Workout
	failing      bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
		favorites:    make(map[string][]string),
		workouts:     make(map[string][]domain.Workout),
	}
}

var errStorage = fmt.Errorf("storage unavailable")

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errStorage
	}
	if _, ok := m.usersByEmail[user.Email]; ok {
		return fmt.Errorf("duplicate email %q", user.Email)
	}
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return domain.User{}, errStorage
	}
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return domain.User{}, errStorage
	}
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.usersByID[id], nil
}

func (m *mockUserRepo) AddFavorite(_ context.Context, userID, workoutID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.favorites[userID] {
		if id == workoutID {
			return nil
		}
	}
	m.favorites[userID] = append(m.favorites[userID], workoutID)
	return nil
}

func (m *mockUserRepo) RemoveFavorite(_ context.Context, userID, workoutID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.favorites[userID][:0]
	for _, id := range m.favorites[userID] {
		if id != workoutID {
			kept = append(kept, id)
		}
	}
	m.favorites[userID] = kept
	return nil
}

func (m *mockUserRepo) ListFavorites(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.favorites[userID]))
	copy(out, m.favorites[userID])
	return out, nil
}

func (m *mockUserRepo) ListWorkouts(_ context.Context, userID string) ([]domain.Workout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.workouts[userID], nil
}

func (m *mockUserRepo) GetImageKey(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.usersByID[userID]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return user.ImageKey, nil
}

func (m *mockUserRepo) SetImageKey(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.usersByID[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.ImageKey = key
	m.usersByID[userID] = user
	return nil
}

func (m *mockUserRepo) ClearImageKey(ctx context.Context, userID string) error {
	return m.SetImageKey(ctx, userID, "")
}

type mockWorkoutRepo struct {
	existing map[string]bool
}

func newMockWorkoutRepo(ids ...string) *mockWorkoutRepo {
	m := &mockWorkoutRepo{existing: make(map[string]bool)}
	for _, id := range ids {
		m.existing[id] = true
	}
	return m
}

func (m *mockWorkoutRepo) Exists(_ context.Context, id string) (bool, error) {
	return m.existing[id], nil
}

type mockObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deletes []string
	uploads []string
	failOn  string
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{objects: make(map[string][]byte)}
}

func (m *mockObjectStore) Upload(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "upload" {
		return errStorage
	}
	m.objects[key] = data
	m.uploads = append(m.uploads, key)
	return nil
}

func (m *mockObjectStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "delete" {
		return errStorage
	}
	delete(m.objects, key)
	m.deletes = append(m.deletes, key)
	return nil
}

func (m *mockObjectStore) PresignedGetURL(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return "", fmt.Errorf("no such key %q", key)
	}
	return "https://store.example.com/" + key, nil
}
