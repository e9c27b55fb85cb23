package models

// CalculatedPricing is the itemized quote derived from a draft and a rate
// snapshot. It has no lifecycle of its own; it is recomputed on demand.
type CalculatedPricing struct {
	BasePricePerHour float64 `json:"base_price_per_hour"`
	TotalBasePrice   float64 `json:"total_base_price"`
	TravelFee        float64 `json:"travel_fee"`
	TruckFee         float64 `json:"truck_fee"`
	StairsFee        float64 `json:"stairs_fee"`
	SpecialItemsFee  float64 `json:"special_items_fee"`
	AddonsFee        float64 `json:"addons_fee"`
	OneTimeFees      float64 `json:"one_time_fees"`
	Tax              float64 `json:"tax"`
	FinalTotal       float64 `json:"final_total"`
}
