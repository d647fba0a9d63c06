package app

import (
	"context"
	"fmt"

	"semicolon_service/internal/memory/repository"
	"semicolon_service/internal/memory/seed"
	"semicolon_service/pkg/logger"

	"go.uber.org/zap"
)

// SeedUseCase 重建資料
type SeedUseCase interface {
	// Reseed wipe both collections and write the story, returns the memory count
	Reseed(ctx context.Context) (int, error)
}

type seedUseCase struct {
	settingRepo repository.SettingRepository
	memoryRepo  repository.MemoryRepository
	storyFile   string
}

// NewSeedUseCase create a SeedUseCase, storyFile empty means the embedded story
func NewSeedUseCase(settingRepo repository.SettingRepository,
	memoryRepo repository.MemoryRepository,
	storyFile string,
) SeedUseCase {
	return &seedUseCase{
		settingRepo: settingRepo,
		memoryRepo:  memoryRepo,
		storyFile:   storyFile,
	}
}

func (s *seedUseCase) Reseed(ctx context.Context) (int, error) {
	story, err := seed.Load(s.storyFile)
	if err != nil {
		return 0, err
	}

	if err := s.settingRepo.ReplaceConfig(ctx, &story.Config); err != nil {
		return 0, fmt.Errorf("seed setting: %w", err)
	}
	if err := s.memoryRepo.ReplaceAll(ctx, story.Memories); err != nil {
		return 0, fmt.Errorf("seed memories: %w", err)
	}

	logger.Log.Info("story reseeded", zap.Int("memories", len(story.Memories)), zap.String("file", s.storyFile))
	return len(story.Memories), nil
}
