package model

// Guide — гид маркетплейса. Ключ — идентификатор аккаунта.
// Запись создаётся один раз при саморегистрации и никогда не удаляется.
type Guide struct {
	Account string `gorm:"type:varchar(128);primaryKey"`

	Verified bool `gorm:"not null;default:false"`

	// Рейтинг гида; пересчитывается при каждом отзыве.
	Rating int64 `gorm:"not null;default:0"`

	// Счётчики меняются только движком бронирований.
	TotalBookings int64 `gorm:"not null;default:0"`
	TotalEarnings int64 `gorm:"not null;default:0"`

	Active bool `gorm:"not null;default:true"`

	// Логическая высота регистрации.
	JoinedAt int64 `gorm:"not null"`
}
