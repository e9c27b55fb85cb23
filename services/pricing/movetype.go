package pricing

import "strings"

// MoveType buckets a service into one of the rate-table categories.
type MoveType string

const (
	MoveResidential MoveType = "residential"
	MoveCommercial  MoveType = "commercial"
	MoveLabour      MoveType = "labour"
	MoveFurniture   MoveType = "furniture"
	MovePacking     MoveType = "packing"
)

// moveTypeOrder is the fixed classification order. First substring match wins.
// The order matters: a service named "commercial labour" classifies as
// commercial, not labour.
var moveTypeOrder = []MoveType{
	MoveResidential,
	MoveCommercial,
	MoveLabour,
	MoveFurniture,
	MovePacking,
}

// ResolveMoveType maps a free-text service category label to a move type by
// ordered case-insensitive substring containment, defaulting to residential.
func ResolveMoveType(serviceCategory string) MoveType {
	label := strings.ToLower(serviceCategory)
	for _, mt := range moveTypeOrder {
		if strings.Contains(label, string(mt)) {
			return mt
		}
	}
	return MoveResidential
}

// IsTruckService reports whether the move type incurs the truck fee.
// Labour-only, furniture and packing jobs bring no truck.
func IsTruckService(mt MoveType) bool {
	return mt == MoveResidential || mt == MoveCommercial
}
