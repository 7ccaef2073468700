package model

// Имена последовательностей для выдачи идентификаторов.
const (
	SequenceExperience = "experience"
	SequenceBooking    = "booking"
	SequenceDispute    = "dispute"
	SequenceEvent      = "event"
)

// sequences — монотонные счётчики (nonce) для последовательных id.
type Sequence struct {
	Name  string `gorm:"type:varchar(32);primaryKey"`
	Value uint64 `gorm:"not null;default:0"`
}
