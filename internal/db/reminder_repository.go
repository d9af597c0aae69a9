package db

import (
	"github.com/dale-waterworth/HealthyMe/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

// FindByProfile returns the profile's reminder config, at most one row. The
// bool reports whether a row exists.
func (repo *ReminderRepository) FindByProfile(profileID uint) (models.ReminderConfig, bool, error) {
	var config models.ReminderConfig
	result := repo.database.
		Where("profile_id = ?", profileID).
		Order("id ASC").
		Limit(1).
		Find(&config)
	if result.Error != nil {
		return models.ReminderConfig{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ReminderConfig{}, false, nil
	}
	return config, true, nil
}

// Upsert writes the config as the profile's single row: an existing row is
// overwritten in place, otherwise one is created. The lookup and the write
// share a transaction so two concurrent saves cannot produce duplicates.
func (repo *ReminderRepository) Upsert(config *models.ReminderConfig) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.ReminderConfig
		result := tx.
			Where("profile_id = ?", config.ProfileID).
			Order("id ASC").
			Limit(1).
			Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			config.ID = existing.ID
		}
		return tx.Save(config).Error
	})
}

// UpdateByID applies a partial update, failing with ErrNotFound for an absent
// id.
func (repo *ReminderRepository) UpdateByID(configID uint, updates map[string]any) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var matched int64
		if err := tx.Model(&models.ReminderConfig{}).Where("id = ?", configID).Count(&matched).Error; err != nil {
			return err
		}
		if matched == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.ReminderConfig{}).Where("id = ?", configID).Updates(updates).Error
	})
}

// ListEnabled returns every config with reminders switched on, used to re-arm
// schedules after a restart.
func (repo *ReminderRepository) ListEnabled() ([]models.ReminderConfig, error) {
	configs := make([]models.ReminderConfig, 0)
	if err := repo.database.Where("is_enabled = ?", true).Order("id ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}
