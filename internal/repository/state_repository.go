package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workboard/internal/models"
)

// StateRecord is the storage row for one state document.
type StateRecord struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (StateRecord) TableName() string {
	return "state_records"
}

// GormStateRepository is a GORM implementation of StateRepository.
type GormStateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(db *gorm.DB) StateRepository {
	return &GormStateRepository{db: db}
}

// Load reads and decodes the state document under key. The document is
// unmarshaled over the initial defaults, so fields absent from an older
// persisted shape fall back to their zero defaults instead of failing.
func (r *GormStateRepository) Load(key string) (models.AppState, bool, error) {
	var record StateRecord
	if err := r.db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewAppState(), false, nil
		}
		return models.AppState{}, false, fmt.Errorf("failed to load state: %w", err)
	}

	state := models.NewAppState()
	if err := json.Unmarshal([]byte(record.Value), &state); err != nil {
		return models.AppState{}, false, fmt.Errorf("failed to decode state: %w", err)
	}
	return state, true, nil
}

// Save serializes the state and upserts it under key.
func (r *GormStateRepository) Save(key string, state models.AppState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	record := StateRecord{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
