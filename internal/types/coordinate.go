// README: Geographic coordinate value object (decimal degrees).
package types

// Coordinate is a (longitude, latitude) pair in decimal degrees.
type Coordinate struct {
	Lng float64 `json:"longitude"`
	Lat float64 `json:"latitude"`
}
