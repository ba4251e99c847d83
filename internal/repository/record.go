package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Logical record keys. The key set is fixed; every persisted blob lives
// under one of these names.
const (
	KeyItems      = "planner_items_v1"
	KeyProfile    = "planner_profile_v1"
	KeyTheme      = "planner_theme_v1"
	KeyFinance    = "planner_finance_v1"
	KeyWeather    = "planner_weather_v1"
	KeyBackground = "planner_bg_image_v1"
)

// Record is one persisted key-value pair.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// RecordRepository is the persistence collaborator: a string store keyed by
// fixed logical names.
type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Load returns the stored value for key. The second result is false when no
// record exists; that is not an error.
func (r *RecordRepository) Load(ctx context.Context, key string) (string, bool, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load record %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Save writes value under key, replacing any previous value.
func (r *RecordRepository) Save(ctx context.Context, key, value string) error {
	rec := Record{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key. Removing a missing key is a no-op.
func (r *RecordRepository) Remove(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove record %q: %w", key, err)
	}
	return nil
}
