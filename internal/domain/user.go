package domain

import "time"

// User represents a rider account.
type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Password      string    `json:"password"` // plaintext, demo only
	WalletBalance int       `json:"wallet_balance"`
	JoinedDate    time.Time `json:"joined_date"`
	TotalRides    int       `json:"total_rides"`
	AverageRating float64   `json:"average_rating"` // 0 = not yet rated
	ProfileImage  string    `json:"profile_image,omitempty"`
}
