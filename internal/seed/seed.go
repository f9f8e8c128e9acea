// Package seed holds the built-in example dataset used when the persistence
// gateway has no (or an unreadable) snapshot.
package seed

import (
	"time"

	"ridebook/internal/domain"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Users returns the fixture rider accounts.
func Users() []domain.User {
	return []domain.User{
		{
			ID:            1,
			Name:          "Ansh Mishra",
			Email:         "rahul@example.com",
			Phone:         "9876543210",
			Password:      "password123",
			WalletBalance: 1500,
			JoinedDate:    mustTime("2023-01-15T10:30:00Z"),
			TotalRides:    12,
			AverageRating: 4.8,
		},
		{
			ID:            2,
			Name:          "Priya Patel",
			Email:         "priya@example.com",
			Phone:         "8765432109",
			Password:      "password123",
			WalletBalance: 2500,
			JoinedDate:    mustTime("2023-02-20T14:45:00Z"),
			TotalRides:    8,
			AverageRating: 4.9,
		},
	}
}

// Drivers returns the fixture driver accounts.
func Drivers() []domain.Driver {
	return []domain.Driver{
		{
			ID:       101,
			Name:     "Raj Kumar",
			Email:    "raj.driver@example.com",
			Phone:    "7654321098",
			Password: "driver123",
			Vehicle: domain.Vehicle{
				Type:        "Sedan",
				Model:       "Hyundai i10",
				Color:       "White",
				PlateNumber: "DL 04 AB 1234",
				Year:        2020,
			},
			Status: domain.DriverStatusAvailable,
			CurrentLocation: domain.Location{
				Address:     "Dwarka, Delhi",
				Coordinates: [2]float64{28.5920, 77.0423},
			},
			Rating:        4.8,
			TotalRides:    245,
			TotalEarnings: 125000,
			JoinedDate:    mustTime("2022-03-10T09:15:00Z"),
			IsVerified:    true,
		},
		{
			ID:       102,
			Name:     "Anil Singh",
			Email:    "anil.driver@example.com",
			Phone:    "6543210987",
			Password: "driver123",
			Vehicle: domain.Vehicle{
				Type:        "Hatchback",
				Model:       "Maruti Swift",
				Color:       "Silver",
				PlateNumber: "MH 01 XY 5678",
				Year:        2019,
			},
			Status: domain.DriverStatusAvailable,
			CurrentLocation: domain.Location{
				Address:     "Andheri, Mumbai",
				Coordinates: [2]float64{19.0760, 72.8777},
			},
			Rating:        4.6,
			TotalRides:    189,
			TotalEarnings: 98000,
			JoinedDate:    mustTime("2022-05-22T11:30:00Z"),
			IsVerified:    true,
		},
		{
			ID:       103,
			Name:     "Sanjay Verma",
			Email:    "sanjay.driver@example.com",
			Phone:    "9432109876",
			Password: "driver123",
			Vehicle: domain.Vehicle{
				Type:        "SUV",
				Model:       "Toyota Innova",
				Color:       "Black",
				PlateNumber: "KA 05 CD 7890",
				Year:        2021,
			},
			Status: domain.DriverStatusBusy,
			CurrentLocation: domain.Location{
				Address:     "Indiranagar, Bangalore",
				Coordinates: [2]float64{12.9784, 77.6408},
			},
			Rating:        4.9,
			TotalRides:    312,
			TotalEarnings: 185000,
			JoinedDate:    mustTime("2021-11-05T08:20:00Z"),
			IsVerified:    true,
		},
	}
}

// Rides returns the fixture ride history, one ride per lifecycle status.
func Rides() []domain.Ride {
	return []domain.Ride{
		{
			ID:     "RIDE001",
			UserID: 1,
			Pickup: domain.Location{
				Address:     "Connaught Place, New Delhi",
				Coordinates: [2]float64{28.6329, 77.2195},
			},
			Drop: domain.Location{
				Address:     "Noida Sector 62, Noida",
				Coordinates: [2]float64{28.6274, 77.3620},
			},
			Status:            domain.RideStatusRequested,
			Fare:              350,
			Distance:          "15.2 km",
			EstimatedDuration: "45 min",
			RideType:          domain.RideTypeSedan,
			RequestedAt:       mustTime("2024-01-29T10:30:00Z"),
		},
		{
			ID:       "RIDE002",
			UserID:   2,
			DriverID: 101,
			Pickup: domain.Location{
				Address:     "Marine Drive, Mumbai",
				Coordinates: [2]float64{19.0760, 72.8777},
			},
			Drop: domain.Location{
				Address:     "Bandra West, Mumbai",
				Coordinates: [2]float64{19.0550, 72.8400},
			},
			Status:            domain.RideStatusAccepted,
			Fare:              280,
			Distance:          "8.5 km",
			EstimatedDuration: "25 min",
			RideType:          domain.RideTypeSedan,
			RequestedAt:       mustTime("2024-01-29T09:15:00Z"),
			AcceptedAt:        mustTime("2024-01-29T09:18:00Z"),
		},
		{
			ID:       "RIDE003",
			UserID:   1,
			DriverID: 103,
			Pickup: domain.Location{
				Address:     "MG Road, Bangalore",
				Coordinates: [2]float64{12.9758, 77.6089},
			},
			Drop: domain.Location{
				Address:     "Electronic City, Bangalore",
				Coordinates: [2]float64{12.8456, 77.6631},
			},
			Status:            domain.RideStatusStarted,
			Fare:              420,
			Distance:          "22.3 km",
			EstimatedDuration: "55 min",
			RideType:          domain.RideTypeSUV,
			RequestedAt:       mustTime("2024-01-29T08:00:00Z"),
			AcceptedAt:        mustTime("2024-01-29T08:05:00Z"),
			StartedAt:         mustTime("2024-01-29T08:15:00Z"),
		},
		{
			ID:       "RIDE004",
			UserID:   2,
			DriverID: 102,
			Pickup: domain.Location{
				Address:     "Hauz Khas, Delhi",
				Coordinates: [2]float64{28.5480, 77.1921},
			},
			Drop: domain.Location{
				Address:     "Gurugram Sector 29",
				Coordinates: [2]float64{28.4926, 77.0783},
			},
			Status:            domain.RideStatusCompleted,
			Fare:              310,
			Distance:          "18.7 km",
			EstimatedDuration: "40 min",
			RideType:          domain.RideTypeSedan,
			RequestedAt:       mustTime("2024-01-28T18:30:00Z"),
			AcceptedAt:        mustTime("2024-01-28T18:32:00Z"),
			StartedAt:         mustTime("2024-01-28T18:40:00Z"),
			CompletedAt:       mustTime("2024-01-28T19:20:00Z"),
			UserRating:        5,
			DriverRating:      4,
			UserReview:        "Good ride, comfortable car",
			DriverReview:      "Punctual passenger",
		},
		{
			ID:       "RIDE005",
			UserID:   1,
			DriverID: 101,
			Pickup: domain.Location{
				Address:     "Koramangala, Bangalore",
				Coordinates: [2]float64{12.9279, 77.6271},
			},
			Drop: domain.Location{
				Address:     "Indiranagar, Bangalore",
				Coordinates: [2]float64{12.9784, 77.6408},
			},
			Status:            domain.RideStatusPaid,
			Fare:              180,
			Distance:          "6.2 km",
			EstimatedDuration: "20 min",
			RideType:          domain.RideTypeMini,
			RequestedAt:       mustTime("2024-01-28T16:00:00Z"),
			AcceptedAt:        mustTime("2024-01-28T16:02:00Z"),
			StartedAt:         mustTime("2024-01-28T16:10:00Z"),
			CompletedAt:       mustTime("2024-01-28T16:30:00Z"),
			PaidAt:            mustTime("2024-01-28T16:35:00Z"),
			PaymentMethod:     domain.PaymentMethodUPI,
			UserRating:        5,
			DriverRating:      5,
			UserReview:        "Excellent service!",
			DriverReview:      "Very polite passenger",
		},
		{
			ID:     "RIDE006",
			UserID: 2,
			Pickup: domain.Location{
				Address:     "South Extension, Delhi",
				Coordinates: [2]float64{28.5678, 77.2241},
			},
			Drop: domain.Location{
				Address:     "Rajouri Garden, Delhi",
				Coordinates: [2]float64{28.6473, 77.1216},
			},
			Status:             domain.RideStatusCancelled,
			Fare:               220,
			Distance:           "12.5 km",
			EstimatedDuration:  "35 min",
			RideType:           domain.RideTypeSedan,
			RequestedAt:        mustTime("2024-01-28T14:30:00Z"),
			CancellationReason: "Driver asked me to cancel",
			CancelledBy:        domain.ActorUser,
		},
	}
}

// CancellationReasons lists the reasons a rider or driver can pick from.
func CancellationReasons() []string {
	return []string{
		"Driver asked me to cancel",
		"My plans changed",
		"Driver didn't move",
		"Too many stops requested",
		"Price too high",
		"Found another ride",
		"Emergency",
		"Wait time too long",
		"Driver not found",
		"Other reason",
	}
}
