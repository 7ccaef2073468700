package service

import (
	"context"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

// NewExperience — поля нового впечатления.
type NewExperience struct {
	Title        string
	Description  string
	Price        int64
	Location     string
	Duration     int64
	MaxTravelers int64
}

// CreateExperience публикует впечатление от имени верифицированного активного гида
// и возвращает его id.
func (m *Marketplace) CreateExperience(ctx context.Context, call Call, in NewExperience) (uint64, error) {
	var id uint64
	err := m.mutate(ctx, "CreateExperience", call, func(ctx context.Context, st *repository.Store) error {
		guide, err := st.Guides.Get(ctx, call.Caller)
		if err != nil {
			return lookupErr(err, "guide")
		}
		if !guide.Verified {
			return apperr.NotVerified("guide is not verified")
		}
		if !guide.Active {
			return apperr.Unauthorized("guide is not active")
		}
		if in.Price <= 0 {
			return apperr.InvalidAmount("price must be positive")
		}
		if in.MaxTravelers <= 0 {
			return apperr.InvalidAmount("max travelers must be positive")
		}

		id, err = allocate(ctx, st, model.SequenceExperience)
		if err != nil {
			return err
		}

		exp := &model.Experience{
			ID:           id,
			Guide:        call.Caller,
			Title:        in.Title,
			Description:  in.Description,
			Price:        in.Price,
			Location:     in.Location,
			Duration:     in.Duration,
			MaxTravelers: in.MaxTravelers,
			Verified:     guide.Verified,
			Active:       true,
			CreatedAt:    call.Height,
		}
		if err := st.Experiences.Create(ctx, exp); err != nil {
			return storeErr(err, "experience")
		}
		return m.record(ctx, st, call, model.EventTypeExperienceCreated, idString(id), map[string]any{
			"title":         in.Title,
			"price":         in.Price,
			"max_travelers": in.MaxTravelers,
		})
	})
	if err != nil {
		return 0, err
	}
	logOp("CreateExperience", call, "experience %d created", id)
	return id, nil
}

// UpdateExperienceStatus включает или выключает впечатление. Только для гида-владельца.
func (m *Marketplace) UpdateExperienceStatus(ctx context.Context, call Call, expID uint64, active bool) error {
	err := m.mutate(ctx, "UpdateExperienceStatus", call, func(ctx context.Context, st *repository.Store) error {
		exp, err := st.Experiences.Get(ctx, expID)
		if err != nil {
			return lookupErr(err, "experience")
		}
		if exp.Guide != call.Caller {
			return apperr.Unauthorized("caller does not own the experience")
		}

		updated := *exp
		updated.Active = active
		if err := st.Experiences.Update(ctx, &updated); err != nil {
			return storeErr(err, "experience")
		}
		return m.record(ctx, st, call, model.EventTypeExperienceStatusUpdated, idString(expID), map[string]any{
			"active": active,
		})
	})
	if err != nil {
		return err
	}
	logOp("UpdateExperienceStatus", call, "experience %d active=%t", expID, active)
	return nil
}
