package model

// reviews — один отзыв на одно завершённое бронирование.
type Review struct {
	BookingID uint64 `gorm:"primaryKey;autoIncrement:false"`

	Rating  int64  `gorm:"not null"`
	Comment string `gorm:"type:text"`

	ReviewedAt int64 `gorm:"not null"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
