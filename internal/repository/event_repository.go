package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type EventRepository interface {
	Append(ctx context.Context, event *model.Event) error
	// Журнал по возрастанию Seq с пагинацией.
	List(ctx context.Context, limit, offset int) ([]model.Event, int64, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Append(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *GormEventRepository) List(ctx context.Context, limit, offset int) ([]model.Event, int64, error) {
	var (
		events []model.Event
		total  int64
	)

	q := r.db.WithContext(ctx).Model(&model.Event{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("seq ASC").Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
