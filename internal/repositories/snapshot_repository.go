package repositories

import (
	"context"
	"errors"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripdeck/internal/models/db_models"
	"tripdeck/pkg/utils"
)

// SnapshotRepository is the durable key-value store behind itinerary saves.
type SnapshotRepository interface {
	Put(ctx context.Context, key string, value []byte) error
	// Get returns utils.ErrSnapshotNotFound when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Put(ctx context.Context, key string, value []byte) error {
	rec := db_models.KVRecord{
		Key:   key,
		Value: datatypes.JSON(value),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		log.Printf("Error writing snapshot %q: %v", key, err)
		return utils.ErrStorage
	}
	return nil
}

func (r *snapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var rec db_models.KVRecord

	err := r.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSnapshotNotFound
	}
	if err != nil {
		log.Printf("Error reading snapshot %q: %v", key, err)
		return nil, utils.ErrDatabaseError
	}

	return []byte(rec.Value), nil
}
