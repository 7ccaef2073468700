package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

// MaxRating — верхняя граница оценки в отзыве.
const MaxRating = 100

// NextRating пересчитывает рейтинг гида после отзыва:
//
//	(old*totalBookings + rating) / totalBookings
//
// Делитель — число бронирований гида, а не число отзывов; результат может превысить MaxRating.
func NextRating(old, totalBookings, rating int64) int64 {
	return (old*totalBookings + rating) / totalBookings
}

// SubmitReview сохраняет отзыв путешественника на завершённое бронирование
// и пересчитывает рейтинг гида. Повторный отзыв на то же бронирование отклоняется.
func (m *Marketplace) SubmitReview(ctx context.Context, call Call, bookingID uint64, rating int64, comment string) error {
	var newRating int64
	err := m.mutate(ctx, "SubmitReview", call, func(ctx context.Context, st *repository.Store) error {
		booking, err := st.Bookings.Get(ctx, bookingID)
		if err != nil {
			return lookupErr(err, "booking")
		}
		if booking.Traveler != call.Caller || booking.Status != model.BookingStatusCompleted {
			return apperr.Unauthorized("booking cannot be reviewed by caller")
		}
		if rating < 0 || rating > MaxRating {
			return apperr.InvalidAmount("rating out of range")
		}

		_, err = st.Reviews.Get(ctx, bookingID)
		if err == nil {
			return apperr.AlreadyExists("booking already reviewed")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return lookupErr(err, "review")
		}

		exp, err := st.Experiences.Get(ctx, booking.ExperienceID)
		if err != nil {
			return lookupErr(err, "experience")
		}
		guide, err := st.Guides.Get(ctx, exp.Guide)
		if err != nil {
			return lookupErr(err, "guide")
		}
		if guide.TotalBookings <= 0 {
			// бронирование уже увеличило счётчик, сюда попасть нельзя
			return apperr.Internal("guide has no bookings", nil)
		}

		review := &model.Review{
			BookingID:  bookingID,
			Rating:     rating,
			Comment:    comment,
			ReviewedAt: call.Height,
		}
		if err := st.Reviews.Create(ctx, review); err != nil {
			return storeErr(err, "review")
		}

		newRating = NextRating(guide.Rating, guide.TotalBookings, rating)
		updated := *guide
		updated.Rating = newRating
		if err := st.Guides.Update(ctx, &updated); err != nil {
			return storeErr(err, "guide")
		}

		return m.record(ctx, st, call, model.EventTypeReviewSubmitted, idString(bookingID), map[string]any{
			"rating":       rating,
			"guide":        guide.Account,
			"guide_rating": newRating,
		})
	})
	if err != nil {
		return err
	}
	logOp("SubmitReview", call, "booking %d reviewed, guide rating %d", bookingID, newRating)
	return nil
}
