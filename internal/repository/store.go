package repository

import "gorm.io/gorm"

// Store собирает репозитории всех коллекций поверх одного *gorm.DB.
// Внутри операции маркетплейса Store создаётся на транзакции, и все записи
// попадают в одну атомарную единицу.
type Store struct {
	Guides       GuideRepository
	Experiences  ExperienceRepository
	Bookings     BookingRepository
	Reviews      ReviewRepository
	Disputes     DisputeRepository
	Availability AvailabilityRepository
	Sequences    SequenceRepository
	Events       EventRepository
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Guides:       NewGormGuideRepository(db),
		Experiences:  NewGormExperienceRepository(db),
		Bookings:     NewGormBookingRepository(db),
		Reviews:      NewGormReviewRepository(db),
		Disputes:     NewGormDisputeRepository(db),
		Availability: NewGormAvailabilityRepository(db),
		Sequences:    NewGormSequenceRepository(db),
		Events:       NewGormEventRepository(db),
	}
}
