package app

import (
	"context"
	"errors"
	"sort"

	"semicolon_service/internal/memory/domain"
	"semicolon_service/internal/memory/repository"
	"semicolon_service/pkg/encrypt"
	"semicolon_service/pkg/logger"
	"semicolon_service/pkg/token"

	"go.uber.org/zap"
)

// GateUseCase 解鎖流程
type GateUseCase interface {
	GetStatus(ctx context.Context) (*domain.Setting, error)
	Login(ctx context.Context, code string) (domain.LoginResult, error)
	ListMemories(ctx context.Context) ([]domain.Memory, error)
}

type gateUseCase struct {
	settingRepo repository.SettingRepository
	memoryRepo  repository.MemoryRepository
	adminCode   string
	adminHash   string
}

// GateOption configure GateUseCase
type GateOption func(*gateUseCase)

// WithAdminCodeHash also accept codes matching this bcrypt hash as the admin override
func WithAdminCodeHash(hash string) GateOption {
	return func(g *gateUseCase) {
		g.adminHash = hash
	}
}

// NewGateUseCase create a GateUseCase, an empty adminCode disables the plain override
func NewGateUseCase(settingRepo repository.SettingRepository,
	memoryRepo repository.MemoryRepository,
	adminCode string,
	opts ...GateOption,
) GateUseCase {
	g := &gateUseCase{
		settingRepo: settingRepo,
		memoryRepo:  memoryRepo,
		adminCode:   adminCode,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GetStatus 回傳設定原樣, 由 handler 決定是否隱藏 unlock_code
func (g *gateUseCase) GetStatus(ctx context.Context) (*domain.Setting, error) {
	return g.settingRepo.FindConfig(ctx)
}

// Login 比對 code, 不做 trim / 大小寫轉換, 不限制次數
func (g *gateUseCase) Login(ctx context.Context, code string) (domain.LoginResult, error) {
	setting, err := g.settingRepo.FindConfig(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotConfigured) {
		return domain.LoginResult{}, err
	}

	if g.isAdmin(code) {
		logger.Log.Debug("login admin override")
		return g.grant(domain.RoleAdmin)
	}

	if setting == nil {
		return domain.LoginResult{}, domain.ErrNotConfigured
	}

	if code == setting.UnlockCode {
		return g.grant(domain.RoleUser)
	}

	logger.Log.Debug("login wrong code")
	return domain.Denied(), nil
}

func (g *gateUseCase) isAdmin(code string) bool {
	if g.adminCode != "" && code == g.adminCode {
		return true
	}
	return g.adminHash != "" && code != "" && encrypt.CheckCode(g.adminHash, code) == nil
}

func (g *gateUseCase) grant(role domain.Role) (domain.LoginResult, error) {
	result := domain.Granted(role)
	t, err := token.GenerateJWTWrapper(string(role))
	if err != nil {
		// the unlock itself succeeded, only strict mode needs the token
		logger.Log.Error("sign unlock token", zap.String("role", string(role)), zap.Error(err))
		return result, nil
	}
	result.Token = t
	return result, nil
}

// ListMemories 依 order 升序, 不檢查是否登入過
func (g *gateUseCase) ListMemories(ctx context.Context) ([]domain.Memory, error) {
	memories, err := g.memoryRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(memories, func(i, j int) bool {
		return memories[i].Order < memories[j].Order
	})
	return memories, nil
}
