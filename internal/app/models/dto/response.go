package dto

import "time"

// APIResponse is the standard success envelope for every endpoint.
type APIResponse struct {
	Status    string      `json:"status" example:"success"`
	Message   string      `json:"message" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope around a payload.
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Status:    "success",
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// CountData carries a single count value for the count endpoints.
type CountData struct {
	Count int64 `json:"count" example:"42"`
}

// StatusData is the health endpoint payload.
type StatusData struct {
	Service string `json:"service" example:"timesheet-server"`
	Version string `json:"version" example:"1.0.0"`
	Uptime  string `json:"uptime" example:"1h23m"`
}
