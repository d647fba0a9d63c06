package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"semicolon_service/internal/memory/domain"
	"semicolon_service/pkg/encrypt"
	"semicolon_service/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminCode = "sajak-admin"

func newSetting(code string) *domain.Setting {
	return &domain.Setting{
		Key:          domain.ConfigKey,
		ReleaseTime:  time.Date(2026, 2, 8, 2, 0, 0, 0, time.UTC),
		UnlockCode:   code,
		FinalMessage: "done",
		MusicURL:     "/music/khsk.mp3",
	}
}

func TestGateUseCase_GetStatusIsIdempotent(t *testing.T) {
	ctx := context.Background()
	setting := newSetting("1234")

	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(setting, nil)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)
	first, err := uc.GetStatus(ctx)
	require.NoError(t, err)
	second, err := uc.GetStatus(ctx)
	require.NoError(t, err)

	assert.Equal(t, *setting, *first)
	assert.Equal(t, *first, *second)
	settingRepo.AssertNumberOfCalls(t, "FindConfig", 2)
}

func TestGateUseCase_GetStatusNotConfigured(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(nil, domain.ErrNotConfigured)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)
	_, err := uc.GetStatus(ctx)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestGateUseCase_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  string
		code    string
		success bool
		role    domain.Role
		reason  string
	}{
		{"stored code", "1234", "1234", true, domain.RoleUser, ""},
		{"admin override", "1234", testAdminCode, true, domain.RoleAdmin, ""},
		{"admin override ignores stored code", testAdminCode + "-other", testAdminCode, true, domain.RoleAdmin, ""},
		{"wrong code", "1234", "wrong", false, "", domain.ReasonWrongCode},
		{"trailing whitespace", "1234", "1234 ", false, "", domain.ReasonWrongCode},
		{"case sensitive", "Secret", "secret", false, "", domain.ReasonWrongCode},
		{"empty code", "1234", "", false, "", domain.ReasonWrongCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settingRepo := new(MockSettingRepository)
			settingRepo.On("FindConfig", ctx).Return(newSetting(tt.stored), nil)

			uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)
			res, err := uc.Login(ctx, tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, tt.role, res.Role)
			assert.Equal(t, tt.reason, res.Reason)
			if tt.success {
				assert.NotEmpty(t, res.Token)
			} else {
				assert.Empty(t, res.Token)
			}
		})
	}
}

func TestGateUseCase_LoginRepeatedAttemptsNeverLockOut(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(newSetting("1234"), nil)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)
	for i := 0; i < 50; i++ {
		res, err := uc.Login(ctx, "nope")
		require.NoError(t, err)
		require.False(t, res.Success)
	}
	res, err := uc.Login(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestGateUseCase_LoginWithoutSetting(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(nil, domain.ErrNotConfigured)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)

	res, err := uc.Login(ctx, testAdminCode)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	_, err = uc.Login(ctx, "1234")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestGateUseCase_LoginEmptyAdminCodeDisablesOverride(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(newSetting("1234"), nil)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), "")
	res, err := uc.Login(ctx, "")
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestGateUseCase_LoginAdminCodeHash(t *testing.T) {
	ctx := context.Background()
	hashed, err := encrypt.HashCode("rahasia")
	require.NoError(t, err)

	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(newSetting("1234"), nil)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), "", WithAdminCodeHash(hashed))

	res, err := uc.Login(ctx, "rahasia")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	res, err = uc.Login(ctx, testAdminCode)
	require.NoError(t, err)
	assert.False(t, res.Success)

	res, err = uc.Login(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestGateUseCase_LoginStoreError(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("server selection error")
	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(nil, storeErr)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)
	_, err := uc.Login(ctx, testAdminCode)
	assert.ErrorIs(t, err, storeErr)
}

func TestGateUseCase_LoginTokenFailureStillGrants(t *testing.T) {
	ctx := context.Background()
	orig := token.GenerateJWTFunc
	token.GenerateJWTFunc = func(role, issuer string) (string, error) {
		return "", errors.New("signing failed")
	}
	defer func() { token.GenerateJWTFunc = orig }()

	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindConfig", ctx).Return(newSetting("1234"), nil)

	uc := NewGateUseCase(settingRepo, new(MockMemoryRepository), testAdminCode)
	res, err := uc.Login(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Token)
}

func TestGateUseCase_ListMemoriesAscending(t *testing.T) {
	ctx := context.Background()
	memoryRepo := new(MockMemoryRepository)
	memoryRepo.On("ListOrdered", ctx).Return([]domain.Memory{
		{Order: 3, Type: domain.MemoryTypePhoto, ImageURL: "c.jpg"},
		{Order: 1, Type: domain.MemoryTypePhoto, ImageURL: "a.jpg"},
		{Order: 2, Type: domain.MemoryTypePhoto, ImageURL: "b.jpg"},
	}, nil)

	uc := NewGateUseCase(new(MockSettingRepository), memoryRepo, testAdminCode)
	memories, err := uc.ListMemories(ctx)
	require.NoError(t, err)

	orders := make([]int, 0, len(memories))
	for _, m := range memories {
		orders = append(orders, m.Order)
	}
	assert.Equal(t, []int{1, 2, 3}, orders)
	memoryRepo.AssertExpectations(t)
}

func TestGateUseCase_ListMemoriesError(t *testing.T) {
	ctx := context.Background()
	memoryRepo := new(MockMemoryRepository)
	memoryRepo.On("ListOrdered", ctx).Return(nil, errors.New("cursor closed"))

	uc := NewGateUseCase(new(MockSettingRepository), memoryRepo, testAdminCode)
	_, err := uc.ListMemories(ctx)
	assert.Error(t, err)
}
