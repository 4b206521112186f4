package models

type Quote struct {
	BaseModel
	UserID       string       `gorm:"not null;index" json:"userId"`
	VehicleBrand string       `json:"vehicleBrand"`
	VehicleModel string       `json:"vehicleModel"`
	VehicleYear  string       `json:"vehicleYear"`
	WheelSize    string       `json:"wheelSize"`
	ServiceType  string       `gorm:"not null" json:"serviceType"`
	Description  string       `json:"description"`
	Status       RecordStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount  *float64     `gorm:"type:decimal(10,2)" json:"totalAmount"`
}
