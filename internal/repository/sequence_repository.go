package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type SequenceRepository interface {
	// Next увеличивает счётчик name на 1 и возвращает новое значение.
	// Первое значение — 1.
	Next(ctx context.Context, name string) (uint64, error)
	// Current возвращает текущее значение без изменения (0, если счётчик ещё не использовался).
	Current(ctx context.Context, name string) (uint64, error)
}

type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

func (r *GormSequenceRepository) Current(ctx context.Context, name string) (uint64, error) {
	var seq model.Sequence
	err := r.db.WithContext(ctx).First(&seq, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}

func (r *GormSequenceRepository) Next(ctx context.Context, name string) (uint64, error) {
	cur, err := r.Current(ctx, name)
	if err != nil {
		return 0, err
	}
	next := cur + 1
	if err := r.db.WithContext(ctx).Save(&model.Sequence{Name: name, Value: next}).Error; err != nil {
		return 0, err
	}
	return next, nil
}
