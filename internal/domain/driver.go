package domain

import "time"

// DriverStatus represents the current availability of a driver.
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

// Vehicle describes a driver's registered vehicle.
type Vehicle struct {
	Type        string `json:"type"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	PlateNumber string `json:"plate_number"`
	Year        int    `json:"year"`
}

// Driver represents a driver account.
type Driver struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Password        string       `json:"password"` // plaintext, demo only
	Vehicle         Vehicle      `json:"vehicle"`
	Status          DriverStatus `json:"status"`
	CurrentLocation Location     `json:"current_location"`
	Rating          float64      `json:"rating"` // 0 = not yet rated
	TotalRides      int          `json:"total_rides"`
	TotalEarnings   int          `json:"total_earnings"`
	JoinedDate      time.Time    `json:"joined_date"`
	IsVerified      bool         `json:"is_verified"`
	ProfileImage    string       `json:"profile_image,omitempty"`
}
