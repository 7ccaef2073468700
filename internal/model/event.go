package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Тип события аудита.
type EventType string

const (
	EventTypeGuideRegistered         EventType = "guide_registered"
	EventTypeGuideVerified           EventType = "guide_verified"
	EventTypeExperienceCreated       EventType = "experience_created"
	EventTypeExperienceStatusUpdated EventType = "experience_status_updated"
	EventTypeBookingCreated          EventType = "booking_created"
	EventTypeBookingCompleted        EventType = "booking_completed"
	EventTypeReviewSubmitted         EventType = "review_submitted"
	EventTypeDisputeRaised           EventType = "dispute_raised"
	EventTypeDisputeResolved         EventType = "dispute_resolved"
)

// events — журнал аудита успешных операций. Пишется в той же транзакции, что и сама операция.
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Порядковый номер записи в журнале.
	Seq uint64 `gorm:"not null;uniqueIndex"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	Actor    string `gorm:"type:varchar(128);not null;index"`
	EntityID string `gorm:"type:varchar(128);not null"`

	// Логическая высота операции.
	Height int64 `gorm:"not null"`

	RecordedAt time.Time `gorm:"not null;index"`

	Details datatypes.JSON
}
