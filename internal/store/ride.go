package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ridebook/internal/domain"
	"ridebook/internal/pricing"
	"ridebook/internal/storage"
)

// RideStore owns the ride collection and the per-actor active-ride pointers.
//
// Status moves strictly forward along
// requested -> accepted -> started -> completed -> paid, with cancellation
// allowed from requested or accepted only. A failed guard returns a sentinel
// error and leaves the collection untouched.
type RideStore struct {
	mu    sync.RWMutex
	gw    storage.Gateway
	fares pricing.Config
	rides []domain.Ride

	// Active-ride pointers, "" when none. Not persisted; rederived by
	// RecomputeActivePointers after a load.
	activeUserRideID   string
	activeDriverRideID string
}

// NewRideStore creates a RideStore, restoring the collection from the gateway
// or seeding when no snapshot exists.
func NewRideStore(ctx context.Context, gw storage.Gateway, seed []domain.Ride) *RideStore {
	s := &RideStore{gw: gw, fares: pricing.DefaultConfig()}

	if !loadSnapshot(ctx, gw, storage.KeyRides, &s.rides) {
		s.rides = append([]domain.Ride(nil), seed...)
	}

	return s
}

func (s *RideStore) persist(ctx context.Context) {
	saveSnapshot(ctx, s.gw, storage.KeyRides, s.rides)
}

// RequestRideParams contains the fields supplied when booking a ride.
type RequestRideParams struct {
	UserID            int
	Pickup            domain.Location
	Drop              domain.Location
	RideType          domain.RideType
	DistanceKm        float64
	EstimatedDuration string
	Fare              int // 0 = compute from DistanceKm and RideType
}

// Request creates a new ride in requested state and points the rider's
// active-ride pointer at it.
func (s *RideStore) Request(ctx context.Context, p RequestRideParams) (*domain.Ride, error) {
	if p.UserID <= 0 {
		return nil, ErrInvalidUserID
	}

	fare := p.Fare
	if fare == 0 {
		fare = pricing.ComputeWithConfig(s.fares, p.DistanceKm, p.RideType)
	}

	ride := domain.Ride{
		ID:                uuid.New().String(),
		UserID:            p.UserID,
		Pickup:            p.Pickup,
		Drop:              p.Drop,
		Status:            domain.RideStatusRequested,
		Fare:              fare,
		Distance:          fmt.Sprintf("%.1f km", p.DistanceKm),
		EstimatedDuration: p.EstimatedDuration,
		RideType:          p.RideType,
		RequestedAt:       time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rides = append(s.rides, ride)
	s.activeUserRideID = ride.ID
	s.persist(ctx)

	return &ride, nil
}

// Accept assigns a driver to a requested ride. The driver id is fixed for the
// ride's lifetime; accepting a ride in any other state fails and changes
// nothing, so a second accept cannot reassign the driver.
func (s *RideStore) Accept(ctx context.Context, rideID string, driverID int) (*domain.Ride, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		if r.Status != domain.RideStatusRequested {
			return ErrRideNotRequested
		}
		r.Status = domain.RideStatusAccepted
		r.DriverID = driverID
		r.AcceptedAt = time.Now()
		s.activeDriverRideID = r.ID
		return nil
	})
}

// Start marks an accepted ride as started.
func (s *RideStore) Start(ctx context.Context, rideID string) (*domain.Ride, error) {
	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		if r.Status != domain.RideStatusAccepted {
			return ErrRideNotAccepted
		}
		r.Status = domain.RideStatusStarted
		r.StartedAt = time.Now()
		return nil
	})
}

// Complete marks a started ride as completed.
func (s *RideStore) Complete(ctx context.Context, rideID string) (*domain.Ride, error) {
	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		if r.Status != domain.RideStatusStarted {
			return ErrRideNotStarted
		}
		r.Status = domain.RideStatusCompleted
		r.CompletedAt = time.Now()
		return nil
	})
}

// MarkPaid settles a completed ride and clears both active-ride pointers.
func (s *RideStore) MarkPaid(ctx context.Context, rideID string, method domain.PaymentMethod) (*domain.Ride, error) {
	switch method {
	case domain.PaymentMethodCash, domain.PaymentMethodUPI,
		domain.PaymentMethodCard, domain.PaymentMethodWallet:
	default:
		return nil, ErrInvalidPaymentMethod
	}

	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		if r.Status != domain.RideStatusCompleted {
			return ErrRideNotCompleted
		}
		r.Status = domain.RideStatusPaid
		r.PaymentMethod = method
		r.PaidAt = time.Now()
		s.activeUserRideID = ""
		s.activeDriverRideID = ""
		return nil
	})
}

// Cancel cancels a requested or accepted ride. The rider's active pointer is
// always cleared; the driver's only when the driver cancelled. A user cancel
// leaves the driver's pointer for them to clear once they notice.
func (s *RideStore) Cancel(ctx context.Context, rideID, reason string, by domain.Actor) (*domain.Ride, error) {
	if by != domain.ActorUser && by != domain.ActorDriver {
		return nil, ErrInvalidActor
	}

	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		if r.Status != domain.RideStatusRequested && r.Status != domain.RideStatusAccepted {
			return ErrRideNotCancellable
		}
		r.Status = domain.RideStatusCancelled
		r.CancellationReason = reason
		r.CancelledBy = by
		s.activeUserRideID = ""
		if by == domain.ActorDriver {
			s.activeDriverRideID = ""
		}
		return nil
	})
}

// Rate records a rating and review on a ride. Either side can rate at any
// point in the lifecycle; there is no status guard.
func (s *RideStore) Rate(ctx context.Context, rideID string, rating float64, review string, by domain.Actor) (*domain.Ride, error) {
	if !validRating(rating) {
		return nil, ErrInvalidRating
	}

	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		switch by {
		case domain.ActorUser:
			r.UserRating = rating
			r.UserReview = review
		case domain.ActorDriver:
			r.DriverRating = rating
			r.DriverReview = review
		default:
			return ErrInvalidActor
		}
		return nil
	})
}

// UpdateLocation records the ride's live tracking position. No status change.
func (s *RideStore) UpdateLocation(ctx context.Context, rideID string, loc domain.Location) (*domain.Ride, error) {
	return s.transition(ctx, rideID, func(r *domain.Ride) error {
		r.CurrentLocation = loc
		return nil
	})
}

// transition applies fn to the ride under the lock and persists on success.
// When fn fails the collection is left exactly as it was.
func (s *RideStore) transition(ctx context.Context, rideID string, fn func(*domain.Ride) error) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rides {
		if s.rides[i].ID != rideID {
			continue
		}

		updated := s.rides[i]
		savedUser, savedDriver := s.activeUserRideID, s.activeDriverRideID
		if err := fn(&updated); err != nil {
			s.activeUserRideID, s.activeDriverRideID = savedUser, savedDriver
			return nil, err
		}

		s.rides[i] = updated
		s.persist(ctx)
		ride := updated
		return &ride, nil
	}

	return nil, ErrRideNotFound
}

// GetByID returns the ride with the given id.
func (s *RideStore) GetByID(rideID string) (*domain.Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rides {
		if s.rides[i].ID == rideID {
			ride := s.rides[i]
			return &ride, nil
		}
	}
	return nil, ErrRideNotFound
}

// GetAll returns the full ride collection.
func (s *RideStore) GetAll() []domain.Ride {
	return s.filter(func(*domain.Ride) bool { return true })
}

// AvailableRides returns rides still waiting for a driver.
func (s *RideStore) AvailableRides() []domain.Ride {
	return s.filter(func(r *domain.Ride) bool { return r.Status == domain.RideStatusRequested })
}

// UserHistory returns all rides booked by a user.
func (s *RideStore) UserHistory(userID int) []domain.Ride {
	return s.filter(func(r *domain.Ride) bool { return r.UserID == userID })
}

// DriverHistory returns all rides served by a driver.
func (s *RideStore) DriverHistory(driverID int) []domain.Ride {
	return s.filter(func(r *domain.Ride) bool { return r.DriverID == driverID })
}

func (s *RideStore) filter(keep func(*domain.Ride) bool) []domain.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Ride
	for i := range s.rides {
		if keep(&s.rides[i]) {
			out = append(out, s.rides[i])
		}
	}
	return out
}

// ActiveUserRide returns the rider's in-progress ride, or nil.
func (s *RideStore) ActiveUserRide() *domain.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupLocked(s.activeUserRideID)
}

// ActiveDriverRide returns the driver's in-progress ride, or nil.
func (s *RideStore) ActiveDriverRide() *domain.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupLocked(s.activeDriverRideID)
}

func (s *RideStore) lookupLocked(rideID string) *domain.Ride {
	if rideID == "" {
		return nil
	}
	for i := range s.rides {
		if s.rides[i].ID == rideID {
			ride := s.rides[i]
			return &ride
		}
	}
	return nil
}

// RecomputeActivePointers rederives both active-ride pointers by scanning the
// collection: first ride of the user's in requested/accepted/started, first
// ride of the driver's in accepted/started. Pointers are not persisted, so
// this runs after every bulk load.
func (s *RideStore) RecomputeActivePointers(userID, driverID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeUserRideID = ""
	s.activeDriverRideID = ""

	for i := range s.rides {
		r := &s.rides[i]
		if s.activeUserRideID == "" && r.UserID == userID && r.ActiveForUser() {
			s.activeUserRideID = r.ID
		}
		if s.activeDriverRideID == "" && r.DriverID == driverID && driverID != 0 && r.ActiveForDriver() {
			s.activeDriverRideID = r.ID
		}
	}
}

// ClearActiveRide drops one actor's active-ride pointer without touching the ride.
func (s *RideStore) ClearActiveRide(actor domain.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch actor {
	case domain.ActorUser:
		s.activeUserRideID = ""
	case domain.ActorDriver:
		s.activeDriverRideID = ""
	default:
		return ErrInvalidActor
	}
	return nil
}
