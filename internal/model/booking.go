package model

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
)

// bookings
type Booking struct {
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`

	ExperienceID uint64 `gorm:"not null;index"`
	Traveler     string `gorm:"type:varchar(128);not null;index"`

	// День, на который сделано бронирование.
	Date int64 `gorm:"not null"`

	TravelersCount int64 `gorm:"not null"`
	TotalPayment   int64 `gorm:"not null"`

	Status BookingStatus `gorm:"type:varchar(32);not null;index"`

	CreatedAt   int64 `gorm:"not null;autoCreateTime:false"`
	CompletedAt int64 `gorm:"not null;default:0"`

	Experience *Experience `gorm:"foreignKey:ExperienceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
