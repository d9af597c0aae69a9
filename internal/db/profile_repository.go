package db

import (
	"errors"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) FindByID(profileID uint) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.First(&profile, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) List() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// First returns the oldest stored profile, the one the application treats as
// current. The bool reports whether any profile exists at all.
func (repo *ProfileRepository) First() (models.Profile, bool, error) {
	var profile models.Profile
	result := repo.database.Order("id ASC").Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

// UpdateByID applies a partial update and fails with ErrNotFound when the id
// is absent. The existence check and the update share one transaction so a
// concurrent delete cannot slip between them.
func (repo *ProfileRepository) UpdateByID(profileID uint, updates map[string]any) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var matched int64
		if err := tx.Model(&models.Profile{}).Where("id = ?", profileID).Count(&matched).Error; err != nil {
			return err
		}
		if matched == 0 {
			return ErrNotFound
		}

		updates["updated_at"] = time.Now()
		return tx.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates).Error
	})
}
