package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"semicolon_service/internal/memory/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedUseCase_ReseedDefaultStory(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepository)
	memoryRepo := new(MockMemoryRepository)

	settingRepo.On("ReplaceConfig", ctx, mock.MatchedBy(func(s *domain.Setting) bool {
		return s.Key == domain.ConfigKey && s.UnlockCode == "191025010802"
	})).Return(nil)
	memoryRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(m []domain.Memory) bool {
		return len(m) == 9
	})).Return(nil)

	uc := NewSeedUseCase(settingRepo, memoryRepo, "")
	count, err := uc.Reseed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	settingRepo.AssertExpectations(t)
	memoryRepo.AssertExpectations(t)
}

func TestSeedUseCase_ReseedStopsOnSettingError(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepository)
	memoryRepo := new(MockMemoryRepository)
	settingRepo.On("ReplaceConfig", ctx, mock.Anything).Return(errors.New("write concern"))

	uc := NewSeedUseCase(settingRepo, memoryRepo, "")
	_, err := uc.Reseed(ctx)
	assert.Error(t, err)
	memoryRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestSeedUseCase_InvalidStoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memories:\n  - {order: 1, type: video}\n"), 0o600))

	settingRepo := new(MockSettingRepository)
	memoryRepo := new(MockMemoryRepository)

	uc := NewSeedUseCase(settingRepo, memoryRepo, path)
	_, err := uc.Reseed(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidMemory)
	settingRepo.AssertNotCalled(t, "ReplaceConfig", mock.Anything, mock.Anything)
}
