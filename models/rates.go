package models

// ServiceRate is the hourly base rate for a (move type, mover count) pair.
type ServiceRate struct {
	MoveType   string  `json:"move_type"`
	MoverCount int     `json:"mover_count"`
	BasePrice  float64 `json:"base_price"`
	IsActive   bool    `json:"is_active"`
}

// TravelFee is the one-time travel charge. PerMileFee is carried in the
// upstream payload but the quote uses the flat BaseFee only.
type TravelFee struct {
	BaseFee    float64 `json:"base_fee"`
	PerMileFee float64 `json:"per_mile_fee"`
	IsActive   bool    `json:"is_active"`
}

// TruckFee is the one-time truck charge for a given crew size.
type TruckFee struct {
	MoverCount int     `json:"mover_count"`
	BaseFee    float64 `json:"base_fee"`
	IsActive   bool    `json:"is_active"`
}

// StairFee is charged per flight of stairs at either address.
type StairFee struct {
	PricePerFlight float64 `json:"price_per_flight"`
	IsActive       bool    `json:"is_active"`
}

// SpecialItem is a surcharge row for a named heavy or fragile item.
type SpecialItem struct {
	Title     string  `json:"title"`
	BasePrice float64 `json:"base_price"`
	IsActive  bool    `json:"is_active"`
}

// Addon is an optional extra. PricePerRoom, when set, is multiplied by the
// draft's room count on top of the base price.
type Addon struct {
	Title        string   `json:"title"`
	BasePrice    float64  `json:"base_price"`
	PricePerRoom *float64 `json:"price_per_room,omitempty"`
	IsActive     bool     `json:"is_active"`
}

// RateTables is an immutable snapshot of the six upstream rate collections.
// A refetch produces a new snapshot; a snapshot is never mutated in place.
type RateTables struct {
	ServiceRates []ServiceRate `json:"service_rates"`
	TravelFees   []TravelFee   `json:"travel_fees"`
	TruckFees    []TruckFee    `json:"truck_fees"`
	StairFees    []StairFee    `json:"stair_fees"`
	SpecialItems []SpecialItem `json:"special_items"`
	Addons       []Addon       `json:"addons"`
}
