package dto

// CreateQuoteRequest deliberately has no userId field: the owner is
// always stamped from the authenticated caller.
type CreateQuoteRequest struct {
	VehicleBrand string `json:"vehicleBrand"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  string `json:"vehicleYear"`
	WheelSize    string `json:"wheelSize"`
	ServiceType  string `json:"serviceType" validate:"required"`
	Description  string `json:"description"`
}

type CreateReservationRequest struct {
	ServiceType string `json:"serviceType" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Notes       string `json:"notes"`
}

// Service is one entry of the static catalog.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
