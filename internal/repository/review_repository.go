package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type ReviewRepository interface {
	Get(ctx context.Context, bookingID uint64) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Get(ctx context.Context, bookingID uint64) (*model.Review, error) {
	var rv model.Review
	if err := r.db.WithContext(ctx).First(&rv, "booking_id = ?", bookingID).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *GormReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}
