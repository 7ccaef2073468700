package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

// RegisterGuide создаёт запись гида для вызывающего аккаунта.
func (m *Marketplace) RegisterGuide(ctx context.Context, call Call) error {
	err := m.mutate(ctx, "RegisterGuide", call, func(ctx context.Context, st *repository.Store) error {
		_, err := st.Guides.Get(ctx, call.Caller)
		if err == nil {
			return apperr.AlreadyExists("guide already registered")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return lookupErr(err, "guide")
		}

		guide := &model.Guide{
			Account:  call.Caller,
			Active:   true,
			JoinedAt: call.Height,
		}
		if err := st.Guides.Create(ctx, guide); err != nil {
			return storeErr(err, "guide")
		}
		return m.recordGuide(ctx, st, call, model.EventTypeGuideRegistered, call.Caller)
	})
	if err != nil {
		return err
	}
	logOp("RegisterGuide", call, "guide %s registered", call.Caller)
	return nil
}

// VerifyGuide помечает гида верифицированным. Только для корня авторизации;
// проверка прав идёт раньше проверки существования.
func (m *Marketplace) VerifyGuide(ctx context.Context, call Call, target string) error {
	err := m.mutate(ctx, "VerifyGuide", call, func(ctx context.Context, st *repository.Store) error {
		if err := m.authority.Check(call.Caller); err != nil {
			return apperr.Unauthorized(err.Error())
		}

		guide, err := st.Guides.Get(ctx, target)
		if err != nil {
			return lookupErr(err, "guide")
		}

		updated := *guide
		updated.Verified = true
		if err := st.Guides.Update(ctx, &updated); err != nil {
			return storeErr(err, "guide")
		}
		return m.recordGuide(ctx, st, call, model.EventTypeGuideVerified, target)
	})
	if err != nil {
		return err
	}
	logOp("VerifyGuide", call, "guide %s verified", target)
	return nil
}

func (m *Marketplace) recordGuide(ctx context.Context, st *repository.Store, call Call, eventType model.EventType, account string) error {
	return m.record(ctx, st, call, eventType, account, nil)
}
