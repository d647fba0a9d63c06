package repository

import (
	"context"
	"errors"
	"fmt"

	"semicolon_service/internal/memory/domain"
	"semicolon_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const settingCollection = "settings"

// SettingRepository definition unlock setting
type SettingRepository interface {
	// FindConfig 取得唯一一筆設定, 沒有時回傳 domain.ErrNotConfigured
	FindConfig(ctx context.Context) (*domain.Setting, error)
	// ReplaceConfig 刪除所有設定後寫入新的一筆
	ReplaceConfig(ctx context.Context, setting *domain.Setting) error
}

type settingRepository struct {
	db database.Provider
}

// NewMongoSettingRepository create a SettingRepository
func NewMongoSettingRepository(db database.Provider) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) coll(ctx context.Context) (*mongo.Collection, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	return conn.Database.Collection(settingCollection), nil
}

func (r *settingRepository) FindConfig(ctx context.Context) (*domain.Setting, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	var setting domain.Setting
	err = coll.FindOne(ctx, bson.M{"key": domain.ConfigKey}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("find setting: %w", err)
	}
	return &setting, nil
}

func (r *settingRepository) ReplaceConfig(ctx context.Context, setting *domain.Setting) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}

	doc := *setting
	doc.Key = domain.ConfigKey
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert setting: %w", err)
	}
	return nil
}
