package db

import (
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
	"gorm.io/gorm"
)

type IntakeRepository struct {
	database *gorm.DB
}

func NewIntakeRepository(database *gorm.DB) *IntakeRepository {
	return &IntakeRepository{database: database}
}

func (repo *IntakeRepository) Create(event *models.IntakeEvent) error {
	return repo.database.Create(event).Error
}

func (repo *IntakeRepository) DeleteByID(eventID uint) error {
	result := repo.database.Delete(&models.IntakeEvent{}, eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByProfile returns the profile's intake events newest-first, optionally
// bounded to timestamp >= from and timestamp <= to.
func (repo *IntakeRepository) ListByProfile(profileID uint, from *time.Time, to *time.Time) ([]models.IntakeEvent, error) {
	query := repo.database.Model(&models.IntakeEvent{}).Where("profile_id = ?", profileID)
	if from != nil {
		query = query.Where("timestamp >= ?", *from)
	}
	if to != nil {
		query = query.Where("timestamp <= ?", *to)
	}

	events := make([]models.IntakeEvent, 0)
	if err := query.Order("timestamp DESC, id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// SumForRange totals intake amounts with timestamp in [start, end). The ledger
// is the authoritative source of daily totals; nothing caches this value.
func (repo *IntakeRepository) SumForRange(profileID uint, start time.Time, end time.Time) (int, error) {
	var total int64
	if err := repo.database.Model(&models.IntakeEvent{}).
		Where("profile_id = ? AND timestamp >= ? AND timestamp < ?", profileID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}
