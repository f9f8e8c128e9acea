package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusStarted   RideStatus = "started"
	RideStatusCompleted RideStatus = "completed"
	RideStatusPaid      RideStatus = "paid"
	RideStatusCancelled RideStatus = "cancelled"
)

// RideType represents the requested vehicle category.
type RideType string

const (
	RideTypeAuto  RideType = "auto"
	RideTypeMini  RideType = "mini"
	RideTypeSedan RideType = "sedan"
	RideTypeSUV   RideType = "suv"
)

// PaymentMethod represents how a ride was paid for.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// Actor identifies which side of a ride performed an action.
type Actor string

const (
	ActorUser   Actor = "user"
	ActorDriver Actor = "driver"
	ActorAdmin  Actor = "admin"
)

// Ride represents a single ride from request through payment or cancellation.
// Timestamps are zero until their transition fires, then set exactly once.
type Ride struct {
	ID                string        `json:"id"`
	UserID            int           `json:"user_id"`
	DriverID          int           `json:"driver_id"` // 0 until accepted, fixed afterwards
	Pickup            Location      `json:"pickup"`
	Drop              Location      `json:"drop"`
	Status            RideStatus    `json:"status"`
	Fare              int           `json:"fare"`
	Distance          string        `json:"distance"`
	EstimatedDuration string        `json:"estimated_duration,omitempty"`
	RideType          RideType      `json:"ride_type"`
	RequestedAt       time.Time     `json:"requested_at"`
	AcceptedAt        time.Time     `json:"accepted_at,omitempty"`
	StartedAt         time.Time     `json:"started_at,omitempty"`
	CompletedAt       time.Time     `json:"completed_at,omitempty"`
	PaidAt            time.Time     `json:"paid_at,omitempty"`
	PaymentMethod     PaymentMethod `json:"payment_method,omitempty"`
	CancellationReason string       `json:"cancellation_reason,omitempty"`
	CancelledBy       Actor         `json:"cancelled_by,omitempty"`
	UserRating        float64       `json:"user_rating,omitempty"`
	DriverRating      float64       `json:"driver_rating,omitempty"`
	UserReview        string        `json:"user_review,omitempty"`
	DriverReview      string        `json:"driver_review,omitempty"`
	CurrentLocation   Location      `json:"current_location,omitempty"` // live tracking
}

// IsTerminal reports whether the ride can no longer change status.
func (r *Ride) IsTerminal() bool {
	return r.Status == RideStatusPaid || r.Status == RideStatusCancelled
}

// ActiveForUser reports whether the ride counts as the rider's in-progress ride.
func (r *Ride) ActiveForUser() bool {
	switch r.Status {
	case RideStatusRequested, RideStatusAccepted, RideStatusStarted:
		return true
	}
	return false
}

// ActiveForDriver reports whether the ride counts as the driver's in-progress ride.
func (r *Ride) ActiveForDriver() bool {
	switch r.Status {
	case RideStatusAccepted, RideStatusStarted:
		return true
	}
	return false
}
