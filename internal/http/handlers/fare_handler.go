// README: Fare form and single-trip quote handlers.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/features"
	"farecast/internal/modules/location"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/trip"
	"farecast/internal/types"
)

type FareHandler struct {
	pricing *pricing.Service
}

func NewFareHandler(pricingSvc *pricing.Service) *FareHandler {
	return &FareHandler{pricing: pricingSvc}
}

type formDefaults struct {
	PickupLongitude  float64 `json:"pickup_longitude"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	PassengerCount   int     `json:"passenger_count"`
	PickupDate       string  `json:"pickup_date"`
	PickupTime       string  `json:"pickup_time"`
}

type formResp struct {
	Bounds        location.Bounds `json:"bounds"`
	MinPassengers int             `json:"min_passengers"`
	MaxPassengers int             `json:"max_passengers"`
	Defaults      formDefaults    `json:"defaults"`
	Columns       []string        `json:"columns"`
}

// Form handles GET /api/form.
func (h *FareHandler) Form(c *gin.Context) {
	d := trip.Defaults()
	writeJSON(c, http.StatusOK, formResp{
		Bounds:        location.NewYorkRegion,
		MinPassengers: trip.MinPassengers,
		MaxPassengers: trip.MaxPassengers,
		Defaults: formDefaults{
			PickupLongitude:  d.Pickup.Lng,
			PickupLatitude:   d.Pickup.Lat,
			DropoffLongitude: d.Dropoff.Lng,
			DropoffLatitude:  d.Dropoff.Lat,
			PassengerCount:   d.Passengers,
			PickupDate:       d.Date.String(),
			PickupTime:       d.Clock.String(),
		},
		Columns: features.Columns[:],
	})
}

// Omitted fields fall back to the form defaults.
type fareReq struct {
	PickupLongitude  *float64 `json:"pickup_longitude"`
	PickupLatitude   *float64 `json:"pickup_latitude"`
	DropoffLongitude *float64 `json:"dropoff_longitude"`
	DropoffLatitude  *float64 `json:"dropoff_latitude"`
	PassengerCount   *int     `json:"passenger_count"`
	PickupDate       *string  `json:"pickup_date"`
	PickupTime       *string  `json:"pickup_time"`
}

// Create handles POST /api/fares.
func (h *FareHandler) Create(c *gin.Context) {
	var req fareReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	r, err := req.toRequest()
	if err != nil {
		writeFareError(c, err)
		return
	}

	q, err := h.pricing.Quote(c.Request.Context(), r)
	if err != nil {
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}

func (req fareReq) toRequest() (trip.Request, error) {
	d := trip.Defaults()
	date, clock := d.Date, d.Clock
	if req.PickupDate != nil {
		v, err := trip.ParseDate(*req.PickupDate)
		if err != nil {
			return trip.Request{}, err
		}
		date = v
	}
	if req.PickupTime != nil {
		v, err := trip.ParseClock(*req.PickupTime)
		if err != nil {
			return trip.Request{}, err
		}
		clock = v
	}
	passengers := d.Passengers
	if req.PassengerCount != nil {
		passengers = *req.PassengerCount
	}
	pickup := types.Coordinate{
		Lng: orDefault(req.PickupLongitude, d.Pickup.Lng),
		Lat: orDefault(req.PickupLatitude, d.Pickup.Lat),
	}
	dropoff := types.Coordinate{
		Lng: orDefault(req.DropoffLongitude, d.Dropoff.Lng),
		Lat: orDefault(req.DropoffLatitude, d.Dropoff.Lat),
	}
	return trip.NewRequest(pickup, dropoff, passengers, date, clock)
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
