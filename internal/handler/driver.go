package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridebook/internal/domain"
	"ridebook/internal/store"
)

// DriverHandler handles HTTP requests for driver accounts.
type DriverHandler struct {
	fleet *store.FleetStore
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(fleet *store.FleetStore) *DriverHandler {
	return &DriverHandler{fleet: fleet}
}

// VehicleResponse mirrors a driver's registered vehicle.
type VehicleResponse struct {
	Type        string `json:"type"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	PlateNumber string `json:"plate_number"`
	Year        int    `json:"year"`
}

// DriverResponse is the HTTP projection of a driver account. The password is
// never included.
type DriverResponse struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Vehicle         VehicleResponse `json:"vehicle"`
	Status          string          `json:"status"`
	CurrentLocation domain.Location `json:"current_location"`
	Rating          float64         `json:"rating"`
	TotalRides      int             `json:"total_rides"`
	TotalEarnings   int             `json:"total_earnings"`
	JoinedDate      string          `json:"joined_date"`
	IsVerified      bool            `json:"is_verified"`
	ProfileImage    string          `json:"profile_image,omitempty"`
}

func toDriverResponse(d domain.Driver) DriverResponse {
	return DriverResponse{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
		Vehicle: VehicleResponse{
			Type:        d.Vehicle.Type,
			Model:       d.Vehicle.Model,
			Color:       d.Vehicle.Color,
			PlateNumber: d.Vehicle.PlateNumber,
			Year:        d.Vehicle.Year,
		},
		Status:          string(d.Status),
		CurrentLocation: d.CurrentLocation,
		Rating:          d.Rating,
		TotalRides:      d.TotalRides,
		TotalEarnings:   d.TotalEarnings,
		JoinedDate:      d.JoinedDate.Format("2006-01-02T15:04:05Z07:00"),
		IsVerified:      d.IsVerified,
		ProfileImage:    d.ProfileImage,
	}
}

// RegisterDriverRequest is the HTTP request body for registering a driver.
type RegisterDriverRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Vehicle  struct {
		Type        string `json:"type"`
		Model       string `json:"model"`
		Color       string `json:"color"`
		PlateNumber string `json:"plate_number"`
		Year        int    `json:"year"`
	} `json:"vehicle"`
}

// UpdateStatusRequest is the HTTP request body for changing availability.
type UpdateStatusRequest struct {
	Status string `json:"status"` // available, busy, offline
}

// UpdateLocationRequest is the HTTP request body for reporting a position.
type UpdateLocationRequest struct {
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// RecordEarningsRequest is the HTTP request body for recording a completed
// ride's earnings.
type RecordEarningsRequest struct {
	Amount int `json:"amount"`
}

// RateRequest is the HTTP request body for submitting a rating.
type RateRequest struct {
	Rating float64 `json:"rating"`
}

// Register handles POST /v1/drivers/register
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.fleet.Register(c.Request.Context(), store.RegisterDriverParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Vehicle: domain.Vehicle{
			Type:        req.Vehicle.Type,
			Model:       req.Vehicle.Model,
			Color:       req.Vehicle.Color,
			PlateNumber: req.Vehicle.PlateNumber,
			Year:        req.Vehicle.Year,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toDriverResponse(*driver))
}

// GetAll handles GET /v1/drivers with an optional ?status= filter.
func (h *DriverHandler) GetAll(c *gin.Context) {
	var drivers []domain.Driver
	switch c.Query("status") {
	case "":
		drivers = h.fleet.GetAll()
	case string(domain.DriverStatusAvailable):
		drivers = h.fleet.Available()
	case string(domain.DriverStatusBusy):
		drivers = h.fleet.Busy()
	case string(domain.DriverStatusOffline):
		drivers = h.fleet.Offline()
	default:
		respondError(c, store.ErrInvalidStatus)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, toDriverResponse(d))
	}

	c.JSON(http.StatusOK, response)
}

// GetByID handles GET /v1/drivers/:id
func (h *DriverHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrInvalidDriverID)
		return
	}

	driver, err := h.fleet.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}

// Me handles GET /v1/drivers/me
func (h *DriverHandler) Me(c *gin.Context) {
	driver := h.fleet.Current()
	if driver == nil {
		respondError(c, store.ErrNotAuthenticated)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}

// UpdateProfile handles PATCH /v1/drivers/me/profile
func (h *DriverHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Name         string `json:"name,omitempty"`
		Phone        string `json:"phone,omitempty"`
		ProfileImage string `json:"profile_image,omitempty"`
		Vehicle      *struct {
			Type        string `json:"type"`
			Model       string `json:"model"`
			Color       string `json:"color"`
			PlateNumber string `json:"plate_number"`
			Year        int    `json:"year"`
		} `json:"vehicle,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	patch := store.DriverProfilePatch{
		Name:         req.Name,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	}
	if req.Vehicle != nil {
		patch.Vehicle = &domain.Vehicle{
			Type:        req.Vehicle.Type,
			Model:       req.Vehicle.Model,
			Color:       req.Vehicle.Color,
			PlateNumber: req.Vehicle.PlateNumber,
			Year:        req.Vehicle.Year,
		}
	}

	driver, err := h.fleet.UpdateProfile(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}

// UpdateStatus handles POST /v1/drivers/me/status
func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.fleet.UpdateStatus(c.Request.Context(), domain.DriverStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}

// UpdateLocation handles POST /v1/drivers/me/location
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.fleet.UpdateLocation(c.Request.Context(), domain.Location{
		Address:     req.Address,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}

// RecordEarnings handles POST /v1/drivers/me/earnings
func (h *DriverHandler) RecordEarnings(c *gin.Context) {
	var req RecordEarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.fleet.RecordEarnings(c.Request.Context(), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}

// UpdateRating handles POST /v1/drivers/me/rating
func (h *DriverHandler) UpdateRating(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.fleet.UpdateRating(c.Request.Context(), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(*driver))
}
