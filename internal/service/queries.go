package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/paging"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

// Запросы на чтение не требуют авторизации и ничего не меняют.
// Отсутствующая запись возвращается как (nil, nil).

func (m *Marketplace) store() *repository.Store {
	return m.newStore(m.db)
}

func (m *Marketplace) GetGuide(ctx context.Context, account string) (*model.Guide, error) {
	return absent(m.store().Guides.Get(ctx, account))
}

func (m *Marketplace) GetExperience(ctx context.Context, id uint64) (*model.Experience, error) {
	return absent(m.store().Experiences.Get(ctx, id))
}

func (m *Marketplace) GetBooking(ctx context.Context, id uint64) (*model.Booking, error) {
	return absent(m.store().Bookings.Get(ctx, id))
}

func (m *Marketplace) GetReview(ctx context.Context, bookingID uint64) (*model.Review, error) {
	return absent(m.store().Reviews.Get(ctx, bookingID))
}

func (m *Marketplace) GetDispute(ctx context.Context, id uint64) (*model.Dispute, error) {
	return absent(m.store().Disputes.Get(ctx, id))
}

// CheckAvailability возвращает слот (впечатление, день); nil — бронирований на день ещё не было.
func (m *Marketplace) CheckAvailability(ctx context.Context, expID uint64, date int64) (*model.AvailabilitySlot, error) {
	return absent(m.store().Availability.Get(ctx, expID, date))
}

func (m *Marketplace) ListGuideExperiences(ctx context.Context, guide string, page, pageSize int) (paging.Page[model.Experience], error) {
	page, pageSize = paging.Normalize(page, pageSize)
	items, total, err := m.store().Experiences.ListByGuide(ctx, guide, pageSize, paging.Offset(page, pageSize))
	if err != nil {
		return paging.Page[model.Experience]{}, apperr.Internal("list experiences", err)
	}
	return paging.FromWindow(items, page, pageSize, total), nil
}

func (m *Marketplace) ListTravelerBookings(ctx context.Context, traveler string, page, pageSize int) (paging.Page[model.Booking], error) {
	page, pageSize = paging.Normalize(page, pageSize)
	items, total, err := m.store().Bookings.ListByTraveler(ctx, traveler, pageSize, paging.Offset(page, pageSize))
	if err != nil {
		return paging.Page[model.Booking]{}, apperr.Internal("list bookings", err)
	}
	return paging.FromWindow(items, page, pageSize, total), nil
}

func (m *Marketplace) ListOpenDisputes(ctx context.Context, page, pageSize int) (paging.Page[model.Dispute], error) {
	page, pageSize = paging.Normalize(page, pageSize)
	items, total, err := m.store().Disputes.ListByStatus(ctx, model.DisputeStatusOpen, pageSize, paging.Offset(page, pageSize))
	if err != nil {
		return paging.Page[model.Dispute]{}, apperr.Internal("list disputes", err)
	}
	return paging.FromWindow(items, page, pageSize, total), nil
}

// ListEvents возвращает журнал аудита от старых событий к новым.
func (m *Marketplace) ListEvents(ctx context.Context, page, pageSize int) (paging.Page[model.Event], error) {
	page, pageSize = paging.Normalize(page, pageSize)
	items, total, err := m.store().Events.List(ctx, pageSize, paging.Offset(page, pageSize))
	if err != nil {
		return paging.Page[model.Event]{}, apperr.Internal("list events", err)
	}
	return paging.FromWindow(items, page, pageSize, total), nil
}

func absent[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("read", err)
	}
	return v, nil
}
