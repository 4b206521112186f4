package models

import "time"

type Reservation struct {
	BaseModel
	UserID      string       `gorm:"not null;index" json:"userId"`
	ServiceType string       `gorm:"not null" json:"serviceType"`
	Date        time.Time    `gorm:"not null" json:"date"`
	Time        string       `gorm:"not null" json:"time"`
	Status      RecordStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes       string       `json:"notes"`
}
