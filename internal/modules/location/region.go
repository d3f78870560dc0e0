// README: Regional bounding box accepted at the input boundary.
package location

import "farecast/internal/types"

// Bounds is an inclusive longitude/latitude box.
type Bounds struct {
	MinLng float64 `json:"min_longitude"`
	MaxLng float64 `json:"max_longitude"`
	MinLat float64 `json:"min_latitude"`
	MaxLat float64 `json:"max_latitude"`
}

// NewYorkRegion is the service area for pickups and dropoffs.
var NewYorkRegion = Bounds{
	MinLng: -79.4554,
	MaxLng: -71.4725,
	MinLat: 40.2940,
	MaxLat: 45.0042,
}

func (b Bounds) ContainsLng(lng float64) bool {
	return lng >= b.MinLng && lng <= b.MaxLng
}

func (b Bounds) ContainsLat(lat float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat
}

func (b Bounds) Contains(c types.Coordinate) bool {
	return b.ContainsLng(c.Lng) && b.ContainsLat(c.Lat)
}
