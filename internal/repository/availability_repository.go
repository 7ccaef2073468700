package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type AvailabilityRepository interface {
	// Слот (впечатление, день).
	Get(ctx context.Context, experienceID uint64, date int64) (*model.AvailabilitySlot, error)
	// Создать или заменить слот.
	Save(ctx context.Context, slot *model.AvailabilitySlot) error
}

type GormAvailabilityRepository struct {
	db *gorm.DB
}

func NewGormAvailabilityRepository(db *gorm.DB) *GormAvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

func (r *GormAvailabilityRepository) Get(ctx context.Context, experienceID uint64, date int64) (*model.AvailabilitySlot, error) {
	var slot model.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("experience_id = ? AND date = ?", experienceID, date).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *GormAvailabilityRepository) Save(ctx context.Context, slot *model.AvailabilitySlot) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "experience_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"available", "booked_count"}),
		}).
		Create(slot).Error
}
