package model

// availability_slots — накопительный счётчик путешественников на (впечатление, день).
type AvailabilitySlot struct {
	ExperienceID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Date         int64  `gorm:"primaryKey;autoIncrement:false"`

	Available   bool  `gorm:"not null;default:true"`
	BookedCount int64 `gorm:"not null;default:0"`

	Experience *Experience `gorm:"foreignKey:ExperienceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
