package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/tour-marketplace/internal/model"
)

type DisputeRepository interface {
	Get(ctx context.Context, id uint64) (*model.Dispute, error)
	Create(ctx context.Context, dispute *model.Dispute) error
	Update(ctx context.Context, dispute *model.Dispute) error
	// Споры в указанном статусе по возрастанию id.
	ListByStatus(ctx context.Context, status model.DisputeStatus, limit, offset int) ([]model.Dispute, int64, error)
}

type GormDisputeRepository struct {
	db *gorm.DB
}

func NewGormDisputeRepository(db *gorm.DB) *GormDisputeRepository {
	return &GormDisputeRepository{db: db}
}

func (r *GormDisputeRepository) Get(ctx context.Context, id uint64) (*model.Dispute, error) {
	var d model.Dispute
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDisputeRepository) Create(ctx context.Context, dispute *model.Dispute) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(dispute).Error
}

func (r *GormDisputeRepository) Update(ctx context.Context, dispute *model.Dispute) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(dispute).Error
}

func (r *GormDisputeRepository) ListByStatus(
	ctx context.Context,
	status model.DisputeStatus,
	limit, offset int,
) ([]model.Dispute, int64, error) {
	var (
		disputes []model.Dispute
		total    int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Dispute{}).
		Where("status = ?", status)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("id ASC").Find(&disputes).Error; err != nil {
		return nil, 0, err
	}

	return disputes, total, nil
}
