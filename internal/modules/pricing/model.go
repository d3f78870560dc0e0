// README: Fare quote and batch scoring results.
package pricing

import (
	"farecast/internal/modules/features"
	"farecast/internal/modules/samples"
	"farecast/internal/types"
)

type Quote struct {
	Fare     types.Money      `json:"fare"`
	Amount   float64          `json:"fare_amount"`
	Display  string           `json:"fare_display"`
	Features features.Summary `json:"features"`
	Vector   features.Vector  `json:"vector"`
	Cached   bool             `json:"cached"`
}

// ScoredRow is a sample row with its predicted fare.
type ScoredRow struct {
	samples.Row
	PickupLongitude  float64 `json:"pickup_longitude"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	Passengers       int     `json:"passenger_count"`
	FareAmount       float64 `json:"fare_amount"`
}

// BatchResult holds one scored row per input row, in input order.
type BatchResult struct {
	Rows []ScoredRow `json:"rows"`
}
