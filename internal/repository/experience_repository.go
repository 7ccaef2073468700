package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type ExperienceRepository interface {
	Get(ctx context.Context, id uint64) (*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	// Впечатления гида по возрастанию id с пагинацией.
	ListByGuide(ctx context.Context, guide string, limit, offset int) ([]model.Experience, int64, error)
}

type GormExperienceRepository struct {
	db *gorm.DB
}

func NewGormExperienceRepository(db *gorm.DB) *GormExperienceRepository {
	return &GormExperienceRepository{db: db}
}

func (r *GormExperienceRepository) Get(ctx context.Context, id uint64) (*model.Experience, error) {
	var e model.Experience
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormExperienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(exp).Error
}

func (r *GormExperienceRepository) Update(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(exp).Error
}

func (r *GormExperienceRepository) ListByGuide(
	ctx context.Context,
	guide string,
	limit, offset int,
) ([]model.Experience, int64, error) {
	var (
		items []model.Experience
		total int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Experience{}).
		Where("guide = ?", guide)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
