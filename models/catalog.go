package models

// Service is one bookable entry of the upstream service catalog.
type Service struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}
