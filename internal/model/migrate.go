package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех коллекций маркетплейса.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Guide{},
		&Experience{},
		&Booking{},
		&Review{},
		&Dispute{},
		&AvailabilitySlot{},
		&Sequence{},
		&Event{},
	)
}
