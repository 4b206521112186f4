package models

import "gorm.io/datatypes"

type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index" json:"userId"`
	Title   string         `gorm:"not null" json:"title"`
	Message string         `gorm:"not null" json:"message"`
	Type    string         `gorm:"not null;default:'info'" json:"type"` // "info", "quote", "invoice", "reservation"
	Read    bool           `gorm:"not null;default:false" json:"read"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"quote_id": "..."}
}
