package service

import (
	"context"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

// RaiseDispute открывает спор по бронированию. Статус бронирования не важен.
func (m *Marketplace) RaiseDispute(ctx context.Context, call Call, bookingID uint64, reason string) (uint64, error) {
	var id uint64
	err := m.mutate(ctx, "RaiseDispute", call, func(ctx context.Context, st *repository.Store) error {
		booking, err := st.Bookings.Get(ctx, bookingID)
		if err != nil {
			return lookupErr(err, "booking")
		}
		if booking.Traveler != call.Caller {
			return apperr.Unauthorized("only the traveler can raise a dispute")
		}

		id, err = allocate(ctx, st, model.SequenceDispute)
		if err != nil {
			return err
		}

		dispute := &model.Dispute{
			ID:        id,
			BookingID: bookingID,
			RaisedBy:  call.Caller,
			Reason:    reason,
			Status:    model.DisputeStatusOpen,
			CreatedAt: call.Height,
		}
		if err := st.Disputes.Create(ctx, dispute); err != nil {
			return storeErr(err, "dispute")
		}
		return m.record(ctx, st, call, model.EventTypeDisputeRaised, idString(id), map[string]any{
			"booking_id": bookingID,
		})
	})
	if err != nil {
		return 0, err
	}
	logOp("RaiseDispute", call, "dispute %d on booking %d", id, bookingID)
	return id, nil
}

// ResolveDispute закрывает спор с текстом решения. Только для корня авторизации.
// Уже разрешённый спор можно разрешить повторно: текст решения перезаписывается.
func (m *Marketplace) ResolveDispute(ctx context.Context, call Call, disputeID uint64, resolution string) error {
	err := m.mutate(ctx, "ResolveDispute", call, func(ctx context.Context, st *repository.Store) error {
		if err := m.authority.Check(call.Caller); err != nil {
			return apperr.Unauthorized(err.Error())
		}

		dispute, err := st.Disputes.Get(ctx, disputeID)
		if err != nil {
			return lookupErr(err, "dispute")
		}

		updated := *dispute
		updated.Status = model.DisputeStatusResolved
		updated.Resolution = &resolution
		if err := st.Disputes.Update(ctx, &updated); err != nil {
			return storeErr(err, "dispute")
		}
		return m.record(ctx, st, call, model.EventTypeDisputeResolved, idString(disputeID), map[string]any{
			"previous_status": dispute.Status,
		})
	})
	if err != nil {
		return err
	}
	logOp("ResolveDispute", call, "dispute %d resolved", disputeID)
	return nil
}
