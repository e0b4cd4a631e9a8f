package models

type Review struct {
	BaseModel
	BookingID  uint   `gorm:"not null;uniqueIndex"`
	UserID     uint   `gorm:"not null;index"`
	ProviderID uint   `gorm:"not null;index"`
	Rating     int    `gorm:"not null"`
	Comment    string `gorm:"type:text"`
}
