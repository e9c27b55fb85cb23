package pricing

import (
	"sort"

	"moveflow/models"
)

const (
	// DefaultBasePrice is the hourly fallback when no service rate matches.
	DefaultBasePrice = 120.0

	// MinHours and MaxHours bound the bookable duration.
	MinHours = 2
	MaxHours = 12

	// DefaultMoverCount is used until the visitor picks a crew size.
	DefaultMoverCount = 2

	// taxRate applies to one-time fees only, not to the hourly base.
	taxRate = 0.05
)

// Calculate derives an itemized quote from a draft and a rate snapshot. It is
// a pure function: identical inputs give identical output, and missing rate
// rows degrade to fallbacks rather than errors.
func Calculate(draft *models.BookingDraft, rates *models.RateTables) models.CalculatedPricing {
	moveType := ResolveMoveType(draft.ServiceCategory)

	p := models.CalculatedPricing{
		BasePricePerHour: basePricePerHour(rates, moveType, draft.MoverCount),
		TravelFee:        travelFee(rates),
		TruckFee:         truckFee(rates, moveType, draft.MoverCount),
		StairsFee:        stairsFee(rates, draft),
		SpecialItemsFee:  specialItemsFee(rates, draft),
		AddonsFee:        addonsFee(rates, draft),
	}

	p.TotalBasePrice = p.BasePricePerHour * float64(draft.Hours)
	p.OneTimeFees = p.TravelFee + p.TruckFee + p.StairsFee + p.SpecialItemsFee + p.AddonsFee
	p.Tax = p.OneTimeFees * taxRate
	p.FinalTotal = p.TotalBasePrice + p.OneTimeFees + p.Tax
	return p
}

func basePricePerHour(rates *models.RateTables, moveType MoveType, moverCount int) float64 {
	for _, r := range rates.ServiceRates {
		if r.IsActive && r.MoveType == string(moveType) && r.MoverCount == moverCount {
			return r.BasePrice
		}
	}
	return DefaultBasePrice
}

// travelFee returns the flat base fee of the single active travel fee row.
// The upstream row also carries a per-mile component, which the quote does
// not apply; see the travel-fee note in DESIGN.md.
func travelFee(rates *models.RateTables) float64 {
	for _, f := range rates.TravelFees {
		if f.IsActive {
			return f.BaseFee
		}
	}
	return 0
}

func truckFee(rates *models.RateTables, moveType MoveType, moverCount int) float64 {
	if !IsTruckService(moveType) {
		return 0
	}
	for _, f := range rates.TruckFees {
		if f.IsActive && f.MoverCount == moverCount {
			return f.BaseFee
		}
	}
	return 0
}

func stairsFee(rates *models.RateTables, draft *models.BookingDraft) float64 {
	flights := draft.Pickup.StairsCount + draft.Destination.StairsCount
	if flights <= 0 {
		return 0
	}
	for _, f := range rates.StairFees {
		if f.IsActive {
			return float64(flights) * f.PricePerFlight
		}
	}
	return 0
}

func specialItemsFee(rates *models.RateTables, draft *models.BookingDraft) float64 {
	total := 0.0
	for name, qty := range draft.SpecialItems {
		if qty <= 0 {
			continue
		}
		for _, item := range rates.SpecialItems {
			if item.IsActive && item.Title == name {
				total += item.BasePrice * float64(qty)
				break
			}
		}
	}
	return total
}

func addonsFee(rates *models.RateTables, draft *models.BookingDraft) float64 {
	total := 0.0
	rooms := float64(draft.RoomCount())
	for _, name := range draft.Addons {
		for _, addon := range rates.Addons {
			if addon.IsActive && addon.Title == name {
				total += addon.BasePrice
				if addon.PricePerRoom != nil {
					total += *addon.PricePerRoom * rooms
				}
				break
			}
		}
	}
	return total
}

// AvailableMoverCounts lists the distinct crew sizes present among active
// service rates, sorted ascending.
func AvailableMoverCounts(rates *models.RateTables) []int {
	seen := make(map[int]bool)
	var counts []int
	for _, r := range rates.ServiceRates {
		if r.IsActive && !seen[r.MoverCount] {
			seen[r.MoverCount] = true
			counts = append(counts, r.MoverCount)
		}
	}
	sort.Ints(counts)
	return counts
}
