package store

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"ridebook/internal/domain"
	"ridebook/internal/storage"
)

// Driver ids start above the user id range.
const driverIDBase = 101

// FleetStore owns the driver collection and the currently authenticated driver.
type FleetStore struct {
	mu      sync.RWMutex
	gw      storage.Gateway
	drivers []domain.Driver
	current *domain.Driver // password-stripped projection, nil when logged out
}

// NewFleetStore creates a FleetStore, restoring the collection and the
// current-driver pointer from the gateway, or seeding when no snapshot exists.
func NewFleetStore(ctx context.Context, gw storage.Gateway, seed []domain.Driver) *FleetStore {
	s := &FleetStore{gw: gw}

	if !loadSnapshot(ctx, gw, storage.KeyDrivers, &s.drivers) {
		s.drivers = append([]domain.Driver(nil), seed...)
	}

	var currentID int
	if loadSnapshot(ctx, gw, storage.KeyCurrentDriver, &currentID) {
		for i := range s.drivers {
			if s.drivers[i].ID == currentID {
				s.current = projectDriver(s.drivers[i])
				break
			}
		}
	}

	return s
}

func projectDriver(d domain.Driver) *domain.Driver {
	d.Password = ""
	return &d
}

func (s *FleetStore) persist(ctx context.Context) {
	saveSnapshot(ctx, s.gw, storage.KeyDrivers, s.drivers)
	if s.current != nil {
		saveSnapshot(ctx, s.gw, storage.KeyCurrentDriver, s.current.ID)
	} else if err := s.gw.Delete(ctx, storage.KeyCurrentDriver); err != nil {
		log.Printf("store: delete snapshot %q: %v", storage.KeyCurrentDriver, err)
	}
}

// Login authenticates by exact email/password match. On success the matched
// record becomes the current driver; on failure the current driver is unchanged.
func (s *FleetStore) Login(ctx context.Context, email, password string) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].Email == email && s.drivers[i].Password == password {
			s.current = projectDriver(s.drivers[i])
			s.persist(ctx)
			return projectDriver(s.drivers[i]), nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the current driver.
func (s *FleetStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.persist(ctx)
}

// RegisterDriverParams contains the fields supplied at driver registration.
type RegisterDriverParams struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Vehicle  domain.Vehicle
}

// Register appends a new driver with the next sequential id (starting at 101)
// and default field values, and logs the new driver in. New drivers start
// offline and unverified.
func (s *FleetStore) Register(ctx context.Context, p RegisterDriverParams) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(p.Email)
	for i := range s.drivers {
		if s.drivers[i].Email == email {
			return nil, ErrEmailTaken
		}
	}

	driver := domain.Driver{
		ID:         len(s.drivers) + driverIDBase,
		Name:       p.Name,
		Email:      email,
		Phone:      p.Phone,
		Password:   p.Password,
		Vehicle:    p.Vehicle,
		Status:     domain.DriverStatusOffline,
		JoinedDate: time.Now(),
	}

	s.drivers = append(s.drivers, driver)
	s.current = projectDriver(driver)
	s.persist(ctx)

	return projectDriver(driver), nil
}

// DriverProfilePatch contains optional profile updates; zero fields are unchanged.
type DriverProfilePatch struct {
	Name         string
	Phone        string
	ProfileImage string
	Vehicle      *domain.Vehicle
}

// UpdateProfile applies a patch to the current driver.
func (s *FleetStore) UpdateProfile(ctx context.Context, patch DriverProfilePatch) (*domain.Driver, error) {
	return s.mutateCurrent(ctx, func(d *domain.Driver) error {
		if patch.Name != "" {
			d.Name = patch.Name
		}
		if patch.Phone != "" {
			d.Phone = patch.Phone
		}
		if patch.ProfileImage != "" {
			d.ProfileImage = patch.ProfileImage
		}
		if patch.Vehicle != nil {
			d.Vehicle = *patch.Vehicle
		}
		return nil
	})
}

// UpdateStatus sets the current driver's availability.
func (s *FleetStore) UpdateStatus(ctx context.Context, status domain.DriverStatus) (*domain.Driver, error) {
	switch status {
	case domain.DriverStatusAvailable, domain.DriverStatusBusy, domain.DriverStatusOffline:
	default:
		return nil, ErrInvalidStatus
	}

	return s.mutateCurrent(ctx, func(d *domain.Driver) error {
		d.Status = status
		return nil
	})
}

// UpdateLocation sets the current driver's position.
func (s *FleetStore) UpdateLocation(ctx context.Context, loc domain.Location) (*domain.Driver, error) {
	return s.mutateCurrent(ctx, func(d *domain.Driver) error {
		d.CurrentLocation = loc
		return nil
	})
}

// RecordEarnings adds a completed ride's fare to the current driver's
// earnings and bumps the ride counter. Call before UpdateRating: the rating
// average reads the counter this increments.
func (s *FleetStore) RecordEarnings(ctx context.Context, amount int) (*domain.Driver, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	return s.mutateCurrent(ctx, func(d *domain.Driver) error {
		d.TotalEarnings += amount
		d.TotalRides++
		return nil
	})
}

// UpdateRating folds a new rating into the current driver's running average,
// rounded to one decimal place. The previous rating count is TotalRides-1,
// assuming RecordEarnings already ran for this ride.
func (s *FleetStore) UpdateRating(ctx context.Context, newRating float64) (*domain.Driver, error) {
	if !validRating(newRating) {
		return nil, ErrInvalidRating
	}

	return s.mutateCurrent(ctx, func(d *domain.Driver) error {
		oldCount := d.TotalRides - 1
		d.Rating = runningAverage(d.Rating, oldCount, newRating)
		return nil
	})
}

func (s *FleetStore) mutateCurrent(ctx context.Context, fn func(*domain.Driver) error) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}

	for i := range s.drivers {
		if s.drivers[i].ID == s.current.ID {
			if err := fn(&s.drivers[i]); err != nil {
				return nil, err
			}
			s.current = projectDriver(s.drivers[i])
			s.persist(ctx)
			return projectDriver(s.drivers[i]), nil
		}
	}

	return nil, ErrDriverNotFound
}

// Current returns the authenticated driver, or nil when logged out.
func (s *FleetStore) Current() *domain.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	d := *s.current
	return &d
}

// GetByID returns the driver with the given id, password stripped.
func (s *FleetStore) GetByID(id int) (*domain.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.drivers {
		if s.drivers[i].ID == id {
			return projectDriver(s.drivers[i]), nil
		}
	}
	return nil, ErrDriverNotFound
}

// GetAll returns all drivers, passwords stripped.
func (s *FleetStore) GetAll() []domain.Driver {
	return s.filter(func(*domain.Driver) bool { return true })
}

// Available returns drivers whose status is available.
func (s *FleetStore) Available() []domain.Driver {
	return s.filter(func(d *domain.Driver) bool { return d.Status == domain.DriverStatusAvailable })
}

// Busy returns drivers whose status is busy.
func (s *FleetStore) Busy() []domain.Driver {
	return s.filter(func(d *domain.Driver) bool { return d.Status == domain.DriverStatusBusy })
}

// Offline returns drivers whose status is offline.
func (s *FleetStore) Offline() []domain.Driver {
	return s.filter(func(d *domain.Driver) bool { return d.Status == domain.DriverStatusOffline })
}

func (s *FleetStore) filter(keep func(*domain.Driver) bool) []domain.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Driver
	for i := range s.drivers {
		if keep(&s.drivers[i]) {
			d := s.drivers[i]
			d.Password = ""
			out = append(out, d)
		}
	}
	return out
}
