package repository

import (
	"context"
	"fmt"

	"semicolon_service/internal/memory/domain"
	"semicolon_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const memoryCollection = "memories"

// MemoryRepository definition story memories
type MemoryRepository interface {
	// ListOrdered 依 order 升序取得全部
	ListOrdered(ctx context.Context) ([]domain.Memory, error)
	// ReplaceAll 清空後寫入整個故事
	ReplaceAll(ctx context.Context, memories []domain.Memory) error
}

type memoryRepository struct {
	db database.Provider
}

// NewMongoMemoryRepository create a MemoryRepository
func NewMongoMemoryRepository(db database.Provider) MemoryRepository {
	return &memoryRepository{db: db}
}

func (r *memoryRepository) coll(ctx context.Context) (*mongo.Collection, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	return conn.Database.Collection(memoryCollection), nil
}

func (r *memoryRepository) ListOrdered(ctx context.Context) ([]domain.Memory, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find memories: %w", err)
	}

	memories := []domain.Memory{}
	if err := cur.All(ctx, &memories); err != nil {
		return nil, fmt.Errorf("decode memories: %w", err)
	}

	for i := range memories {
		memories[i].Normalize()
		if err := memories[i].Validate(); err != nil {
			return nil, err
		}
	}
	return memories, nil
}

func (r *memoryRepository) ReplaceAll(ctx context.Context, memories []domain.Memory) error {
	if err := domain.ValidateStory(memories); err != nil {
		return err
	}

	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear memories: %w", err)
	}

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("order_unique"),
	})
	if err != nil {
		return fmt.Errorf("create order index: %w", err)
	}

	if len(memories) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(memories))
	for _, m := range memories {
		docs = append(docs, m)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert memories: %w", err)
	}
	return nil
}
