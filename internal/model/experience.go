package model

// experiences
type Experience struct {
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`

	Guide string `gorm:"type:varchar(128);not null;index"`

	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	// Цена за одного путешественника, всегда > 0.
	Price int64 `gorm:"not null"`

	Location string `gorm:"type:varchar(255)"`
	Duration int64  `gorm:"not null;default:0"`

	MaxTravelers int64 `gorm:"not null"`

	Verified bool `gorm:"not null;default:false"`
	Active   bool `gorm:"not null;default:true;index"`

	CreatedAt int64 `gorm:"not null;autoCreateTime:false"`

	Owner *Guide `gorm:"foreignKey:Guide;references:Account;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
