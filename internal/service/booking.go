package service

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

// CreateBooking бронирует впечатление на день date и возвращает id бронирования.
//
// В одной транзакции:
//   - сохраняется бронирование со статусом confirmed;
//   - у гида растут total-bookings (+1) и total-earnings (+price*travelers);
//   - booked-count слота (впечатление, день) растёт на travelers.
//
// Суммарная загрузка дня не ограничивается: maxTravelers ограничивает только одно бронирование.
func (m *Marketplace) CreateBooking(ctx context.Context, call Call, expID uint64, date int64, travelers int64) (uint64, error) {
	var (
		id    uint64
		total int64
	)
	err := m.mutate(ctx, "CreateBooking", call, func(ctx context.Context, st *repository.Store) error {
		exp, err := st.Experiences.Get(ctx, expID)
		if err != nil {
			return lookupErr(err, "experience")
		}
		guide, err := st.Guides.Get(ctx, exp.Guide)
		if err != nil {
			return lookupErr(err, "guide")
		}

		if !exp.Active {
			return apperr.Unauthorized("experience is not active")
		}
		if travelers <= 0 || travelers > exp.MaxTravelers {
			return apperr.InvalidAmount("travelers count out of range")
		}
		if exp.Price > math.MaxInt64/travelers {
			return apperr.InvalidAmount("total payment overflows")
		}
		total = exp.Price * travelers
		// price >= 1, поэтому TotalBookings и BookedCount не превышают TotalEarnings.
		if guide.TotalEarnings > math.MaxInt64-total {
			return apperr.InvalidAmount("guide earnings overflow")
		}

		id, err = allocate(ctx, st, model.SequenceBooking)
		if err != nil {
			return err
		}

		booking := &model.Booking{
			ID:             id,
			ExperienceID:   expID,
			Traveler:       call.Caller,
			Date:           date,
			TravelersCount: travelers,
			TotalPayment:   total,
			Status:         model.BookingStatusConfirmed,
			CreatedAt:      call.Height,
			CompletedAt:    0,
		}
		if err := st.Bookings.Create(ctx, booking); err != nil {
			return storeErr(err, "booking")
		}

		updatedGuide := *guide
		updatedGuide.TotalBookings++
		updatedGuide.TotalEarnings += total
		if err := st.Guides.Update(ctx, &updatedGuide); err != nil {
			return storeErr(err, "guide")
		}

		slot, err := st.Availability.Get(ctx, expID, date)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			slot = &model.AvailabilitySlot{ExperienceID: expID, Date: date, Available: true}
		case err != nil:
			return lookupErr(err, "availability")
		}
		updatedSlot := *slot
		updatedSlot.BookedCount += travelers
		if err := st.Availability.Save(ctx, &updatedSlot); err != nil {
			return storeErr(err, "availability")
		}

		return m.record(ctx, st, call, model.EventTypeBookingCreated, idString(id), map[string]any{
			"experience_id": expID,
			"date":          date,
			"travelers":     travelers,
			"total_payment": total,
		})
	})
	if err != nil {
		return 0, err
	}
	logOp("CreateBooking", call, "booking %d on experience %d date %d travelers %d total %d", id, expID, date, travelers, total)
	return id, nil
}

// CompleteBooking переводит бронирование confirmed -> completed.
// Чужой вызывающий и неверный статус дают одинаковый Unauthorized.
func (m *Marketplace) CompleteBooking(ctx context.Context, call Call, bookingID uint64) error {
	err := m.mutate(ctx, "CompleteBooking", call, func(ctx context.Context, st *repository.Store) error {
		booking, err := st.Bookings.Get(ctx, bookingID)
		if err != nil {
			return lookupErr(err, "booking")
		}
		if booking.Traveler != call.Caller || booking.Status != model.BookingStatusConfirmed {
			return apperr.Unauthorized("booking cannot be completed by caller")
		}

		updated := *booking
		updated.Status = model.BookingStatusCompleted
		updated.CompletedAt = call.Height
		if err := st.Bookings.Update(ctx, &updated); err != nil {
			return storeErr(err, "booking")
		}
		return m.record(ctx, st, call, model.EventTypeBookingCompleted, idString(bookingID), nil)
	})
	if err != nil {
		return err
	}
	logOp("CompleteBooking", call, "booking %d completed", bookingID)
	return nil
}
