package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type GuideRepository interface {
	// Получить гида по аккаунту.
	Get(ctx context.Context, account string) (*model.Guide, error)
	// Создать запись гида.
	Create(ctx context.Context, guide *model.Guide) error
	// Заменить запись гида целиком.
	Update(ctx context.Context, guide *model.Guide) error
}

// Реализация на GORM.
type GormGuideRepository struct {
	db *gorm.DB
}

func NewGormGuideRepository(db *gorm.DB) *GormGuideRepository {
	return &GormGuideRepository{db: db}
}

func (r *GormGuideRepository) Get(ctx context.Context, account string) (*model.Guide, error) {
	var g model.Guide
	if err := r.db.WithContext(ctx).First(&g, "account = ?", account).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GormGuideRepository) Create(ctx context.Context, guide *model.Guide) error {
	return r.db.WithContext(ctx).Create(guide).Error
}

func (r *GormGuideRepository) Update(ctx context.Context, guide *model.Guide) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(guide).Error
}
