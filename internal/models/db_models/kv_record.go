package db_models

import "gorm.io/datatypes"

// KVRecord is one durable key-value row. Itinerary and destination snapshots
// are written under fixed per-session keys.
type KVRecord struct {
	Key       string         `gorm:"primaryKey;size:128"`
	Value     datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}
