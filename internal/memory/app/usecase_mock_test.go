package app

import (
	"context"
	"sort"
	"sync"

	"semicolon_service/internal/memory/domain"
	"semicolon_service/pkg/database"

	"github.com/stretchr/testify/mock"
)

// MockSettingRepository Mock SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

// FindConfig mock find config
func (m *MockSettingRepository) FindConfig(ctx context.Context) (*domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Setting), args.Error(1)
	}
	return nil, args.Error(1)
}

// ReplaceConfig mock replace config
func (m *MockSettingRepository) ReplaceConfig(ctx context.Context, setting *domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// MockMemoryRepository Mock MemoryRepository
type MockMemoryRepository struct {
	mock.Mock
}

// ListOrdered mock list memories
func (m *MockMemoryRepository) ListOrdered(ctx context.Context) ([]domain.Memory, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Memory), args.Error(1)
	}
	return nil, args.Error(1)
}

// ReplaceAll mock replace memories
func (m *MockMemoryRepository) ReplaceAll(ctx context.Context, memories []domain.Memory) error {
	args := m.Called(ctx, memories)
	return args.Error(0)
}

// inMemoryStore backs both repositories for end-to-end handler tests, insertion order is kept as-is
type inMemoryStore struct {
	mu       sync.Mutex
	setting  *domain.Setting
	memories []domain.Memory
}

func (s *inMemoryStore) FindConfig(ctx context.Context) (*domain.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setting == nil {
		return nil, domain.ErrNotConfigured
	}
	cp := *s.setting
	return &cp, nil
}

func (s *inMemoryStore) ReplaceConfig(ctx context.Context, setting *domain.Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *setting
	cp.Key = domain.ConfigKey
	s.setting = &cp
	return nil
}

func (s *inMemoryStore) ListOrdered(ctx context.Context) ([]domain.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]domain.Memory{}, s.memories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *inMemoryStore) ReplaceAll(ctx context.Context, memories []domain.Memory) error {
	if err := domain.ValidateStory(memories); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memories = append([]domain.Memory{}, memories...)
	return nil
}

type fixedState database.State

func (f fixedState) State() database.State {
	return database.State(f)
}
