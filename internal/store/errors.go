package store

import "errors"

var (
	// ErrInvalidCredentials is returned when no record matches the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotAuthenticated is returned by mutations that require a current record.
	ErrNotAuthenticated = errors.New("no authenticated record")

	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDriverNotFound is returned when a driver id does not exist.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrRideNotFound is returned when a ride id does not exist.
	ErrRideNotFound = errors.New("ride not found")

	// ErrInvalidUserID is returned when a user id is missing or non-positive.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidDriverID is returned when a driver id is missing or non-positive.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidRideID is returned when a ride id is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidRating is returned when a rating falls outside 0-5.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrInvalidStatus is returned when a driver status value is unknown.
	ErrInvalidStatus = errors.New("invalid driver status")

	// ErrInvalidActor is returned when an actor is neither user nor driver.
	ErrInvalidActor = errors.New("invalid actor")

	// ErrInvalidAmount is returned when a wallet or earnings amount is negative.
	ErrInvalidAmount = errors.New("amount must be non-negative")

	// ErrInvalidPaymentMethod is returned when a payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Ride transition guards. A failed guard returns one of these and
	// leaves the ride unchanged.

	// ErrRideNotRequested is returned when accepting a ride that is not in requested state.
	ErrRideNotRequested = errors.New("ride not in requested state")

	// ErrRideNotAccepted is returned when starting a ride that is not in accepted state.
	ErrRideNotAccepted = errors.New("ride not in accepted state")

	// ErrRideNotStarted is returned when completing a ride that is not in started state.
	ErrRideNotStarted = errors.New("ride not in started state")

	// ErrRideNotCompleted is returned when paying for a ride that is not in completed state.
	ErrRideNotCompleted = errors.New("ride not in completed state")

	// ErrRideNotCancellable is returned when cancelling a ride past the accepted state.
	ErrRideNotCancellable = errors.New("ride cannot be cancelled in current state")
)
