package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridebook/internal/domain"
	"ridebook/internal/store"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rides *store.RideStore
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rides *store.RideStore) *RideHandler {
	return &RideHandler{rides: rides}
}

// RequestRideRequest is the HTTP request body for requesting a ride.
type RequestRideRequest struct {
	UserID            int             `json:"user_id"`
	Pickup            domain.Location `json:"pickup"`
	Drop              domain.Location `json:"drop"`
	RideType          string          `json:"ride_type"`
	DistanceKm        float64         `json:"distance_km"`
	EstimatedDuration string          `json:"estimated_duration,omitempty"`
	Fare              int             `json:"fare,omitempty"` // 0 = computed server-side
}

// AcceptRideRequest is the HTTP request body for accepting a ride.
type AcceptRideRequest struct {
	DriverID int `json:"driver_id"`
}

// PayRideRequest is the HTTP request body for settling a completed ride.
type PayRideRequest struct {
	PaymentMethod string `json:"payment_method"` // cash, upi, card, wallet
}

// CancelRideRequest is the HTTP request body for cancelling a ride.
type CancelRideRequest struct {
	Reason      string `json:"reason,omitempty"`
	CancelledBy string `json:"cancelled_by"` // user, driver
}

// RateRideRequest is the HTTP request body for rating a ride.
type RateRideRequest struct {
	Rating  float64 `json:"rating"`
	Review  string  `json:"review,omitempty"`
	RatedBy string  `json:"rated_by"` // user, driver
}

// RideLocationRequest is the HTTP request body for live position updates.
type RideLocationRequest struct {
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// RideResponse is the HTTP projection of a ride. Timestamps appear once their
// transition has fired.
type RideResponse struct {
	ID                 string          `json:"id"`
	UserID             int             `json:"user_id"`
	DriverID           int             `json:"driver_id,omitempty"`
	Pickup             domain.Location `json:"pickup"`
	Drop               domain.Location `json:"drop"`
	Status             string          `json:"status"`
	Fare               int             `json:"fare"`
	Distance           string          `json:"distance"`
	EstimatedDuration  string          `json:"estimated_duration,omitempty"`
	RideType           string          `json:"ride_type"`
	RequestedAt        string          `json:"requested_at"`
	AcceptedAt         string          `json:"accepted_at,omitempty"`
	StartedAt          string          `json:"started_at,omitempty"`
	CompletedAt        string          `json:"completed_at,omitempty"`
	PaidAt             string          `json:"paid_at,omitempty"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CancelledBy        string          `json:"cancelled_by,omitempty"`
	UserRating         float64         `json:"user_rating,omitempty"`
	DriverRating       float64         `json:"driver_rating,omitempty"`
	UserReview         string          `json:"user_review,omitempty"`
	DriverReview       string          `json:"driver_review,omitempty"`
	CurrentLocation    domain.Location `json:"current_location,omitempty"`
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func toRideResponse(r domain.Ride) RideResponse {
	resp := RideResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		DriverID:           r.DriverID,
		Pickup:             r.Pickup,
		Drop:               r.Drop,
		Status:             string(r.Status),
		Fare:               r.Fare,
		Distance:           r.Distance,
		EstimatedDuration:  r.EstimatedDuration,
		RideType:           string(r.RideType),
		RequestedAt:        r.RequestedAt.Format(timeFormat),
		PaymentMethod:      string(r.PaymentMethod),
		CancellationReason: r.CancellationReason,
		CancelledBy:        string(r.CancelledBy),
		UserRating:         r.UserRating,
		DriverRating:       r.DriverRating,
		UserReview:         r.UserReview,
		DriverReview:       r.DriverReview,
		CurrentLocation:    r.CurrentLocation,
	}

	if !r.AcceptedAt.IsZero() {
		resp.AcceptedAt = r.AcceptedAt.Format(timeFormat)
	}
	if !r.StartedAt.IsZero() {
		resp.StartedAt = r.StartedAt.Format(timeFormat)
	}
	if !r.CompletedAt.IsZero() {
		resp.CompletedAt = r.CompletedAt.Format(timeFormat)
	}
	if !r.PaidAt.IsZero() {
		resp.PaidAt = r.PaidAt.Format(timeFormat)
	}

	return resp
}

func toRideResponses(rides []domain.Ride) []RideResponse {
	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, toRideResponse(r))
	}
	return response
}

// Request handles POST /v1/rides
func (h *RideHandler) Request(c *gin.Context) {
	var req RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.Request(c.Request.Context(), store.RequestRideParams{
		UserID:            req.UserID,
		Pickup:            req.Pickup,
		Drop:              req.Drop,
		RideType:          domain.RideType(req.RideType),
		DistanceKm:        req.DistanceKm,
		EstimatedDuration: req.EstimatedDuration,
		Fare:              req.Fare,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(*ride))
}

// GetAll handles GET /v1/rides
func (h *RideHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, toRideResponses(h.rides.GetAll()))
}

// Available handles GET /v1/rides/available
func (h *RideHandler) Available(c *gin.Context) {
	c.JSON(http.StatusOK, toRideResponses(h.rides.AvailableRides()))
}

// Active handles GET /v1/rides/active with a required ?actor= query.
func (h *RideHandler) Active(c *gin.Context) {
	var ride *domain.Ride
	switch domain.Actor(c.Query("actor")) {
	case domain.ActorUser:
		ride = h.rides.ActiveUserRide()
	case domain.ActorDriver:
		ride = h.rides.ActiveDriverRide()
	default:
		respondError(c, store.ErrInvalidActor)
		return
	}

	if ride == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// GetByID handles GET /v1/rides/:id
func (h *RideHandler) GetByID(c *gin.Context) {
	ride, err := h.rides.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// UserHistory handles GET /v1/rides/user/:id
func (h *RideHandler) UserHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrInvalidUserID)
		return
	}

	c.JSON(http.StatusOK, toRideResponses(h.rides.UserHistory(id)))
}

// DriverHistory handles GET /v1/rides/driver/:id
func (h *RideHandler) DriverHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrInvalidDriverID)
		return
	}

	c.JSON(http.StatusOK, toRideResponses(h.rides.DriverHistory(id)))
}

// Accept handles POST /v1/rides/:id/accept
func (h *RideHandler) Accept(c *gin.Context) {
	var req AcceptRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.Accept(c.Request.Context(), c.Param("id"), req.DriverID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// Start handles POST /v1/rides/:id/start
func (h *RideHandler) Start(c *gin.Context) {
	ride, err := h.rides.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// Complete handles POST /v1/rides/:id/complete
func (h *RideHandler) Complete(c *gin.Context) {
	ride, err := h.rides.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// Pay handles POST /v1/rides/:id/pay
func (h *RideHandler) Pay(c *gin.Context) {
	var req PayRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.MarkPaid(c.Request.Context(), c.Param("id"), domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// Cancel handles POST /v1/rides/:id/cancel
func (h *RideHandler) Cancel(c *gin.Context) {
	var req CancelRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.Cancel(c.Request.Context(), c.Param("id"), req.Reason, domain.Actor(req.CancelledBy))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// Rate handles POST /v1/rides/:id/rate
func (h *RideHandler) Rate(c *gin.Context) {
	var req RateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.Rate(c.Request.Context(), c.Param("id"), req.Rating, req.Review, domain.Actor(req.RatedBy))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}

// UpdateLocation handles POST /v1/rides/:id/location
func (h *RideHandler) UpdateLocation(c *gin.Context) {
	var req RideLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.UpdateLocation(c.Request.Context(), c.Param("id"), domain.Location{
		Address:     req.Address,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(*ride))
}
