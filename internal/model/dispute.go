package model

type DisputeStatus string

const (
	DisputeStatusOpen     DisputeStatus = "open"
	DisputeStatusResolved DisputeStatus = "resolved"
)

// disputes
type Dispute struct {
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`

	BookingID uint64 `gorm:"not null;index"`
	RaisedBy  string `gorm:"type:varchar(128);not null"`
	Reason    string `gorm:"type:text"`

	Status DisputeStatus `gorm:"type:varchar(32);not null;index"`

	// nil, пока спор не разрешён.
	Resolution *string `gorm:"type:text"`

	CreatedAt int64 `gorm:"not null;autoCreateTime:false"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
