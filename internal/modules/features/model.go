// README: Derived trip features and the fixed-order vector the fare model consumes.
package features

// Column names in the order the fare model was trained on. Reordering them
// silently corrupts every prediction.
var Columns = [Width]string{
	"pickup_longitude",
	"pickup_latitude",
	"dropoff_longitude",
	"dropoff_latitude",
	"passenger_count",
	"year",
	"month",
	"day",
	"hour",
	"minute",
	"distance_km",
	"lon_diff",
	"lat_diff",
}

const Width = 13

// Vector is one model input row, laid out as Columns.
type Vector [Width]float64

func (v Vector) Slice() []float64 {
	out := make([]float64, Width)
	copy(out, v[:])
	return out
}

// Temporal holds the calendar components of the pickup time.
type Temporal struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Derived is everything computed from a trip request before assembly.
type Derived struct {
	DistanceKm float64
	LonDiff    float64
	LatDiff    float64
	Temporal
}
