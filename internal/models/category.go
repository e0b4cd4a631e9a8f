package models

type ServiceCategory struct {
	BaseModel
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:50"`
}
