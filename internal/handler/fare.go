package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ridebook/internal/domain"
	"ridebook/internal/pricing"
)

// FareHandler handles HTTP requests for fare quotes.
type FareHandler struct {
	cfg pricing.Config
}

// NewFareHandler creates a new FareHandler.
func NewFareHandler(cfg pricing.Config) *FareHandler {
	return &FareHandler{cfg: cfg}
}

// QuoteRequest is the HTTP request body for a fare quote. The optional policy
// flags layer surcharges on top of the base fare; At defaults to now.
type QuoteRequest struct {
	DistanceKm     float64 `json:"distance_km"`
	RideType       string  `json:"ride_type"`
	At             string  `json:"at,omitempty"` // RFC 3339
	ApplyNight     bool    `json:"apply_night,omitempty"`
	ApplyPeak      bool    `json:"apply_peak,omitempty"`
	ApplyGST       bool    `json:"apply_gst,omitempty"`
	WaitingMinutes int     `json:"waiting_minutes,omitempty"`
}

// QuoteResponse is the HTTP response for a fare quote.
type QuoteResponse struct {
	DistanceKm    float64 `json:"distance_km"`
	RideType      string  `json:"ride_type"`
	Multiplier    float64 `json:"multiplier"`
	BaseFare      int     `json:"base_fare"`
	WaitingCharge int     `json:"waiting_charge,omitempty"`
	Total         int     `json:"total"`
}

// Quote handles POST /v1/fares/quote
func (h *FareHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	at := time.Now()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid timestamp"})
			return
		}
		at = parsed
	}

	rideType := domain.RideType(req.RideType)
	base := pricing.ComputeWithConfig(h.cfg, req.DistanceKm, rideType)

	total := base
	if req.ApplyNight {
		total = h.cfg.WithNightCharge(total, at)
	}
	if req.ApplyPeak {
		total = h.cfg.WithPeakCharge(total, at)
	}

	waiting := 0
	if req.WaitingMinutes > 0 {
		waiting = h.cfg.WaitingCharge(time.Duration(req.WaitingMinutes) * time.Minute)
		total += waiting
	}

	if req.ApplyGST {
		total = h.cfg.WithGST(total)
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		DistanceKm:    req.DistanceKm,
		RideType:      string(rideType),
		Multiplier:    pricing.Multiplier(rideType),
		BaseFare:      base,
		WaitingCharge: waiting,
		Total:         total,
	})
}
