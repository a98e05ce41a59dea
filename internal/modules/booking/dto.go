package booking

import "equiprent/internal/pricing"

// Dates travel as plain calendar dates, the storefront's wire format.
const dateLayout = "2006-01-02"

type QuoteRequest struct {
	EquipmentID    int64  `json:"equipment_id" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
	DeliveryOption string `json:"delivery_option" binding:"required"`
}

type CreateBookingRequest struct {
	EquipmentID     int64  `json:"equipment_id" binding:"required"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	DeliveryOption  string `json:"delivery_option" binding:"required"`
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityResponse struct {
	EquipmentID int64 `json:"equipment_id"`
	Available   bool  `json:"available"`
}

type QuoteResponse struct {
	EquipmentID int64         `json:"equipment_id"`
	Quote       pricing.Quote `json:"quote"`
}
