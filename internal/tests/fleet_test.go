package tests

import (
	"context"
	"errors"
	"testing"

	"ridebook/internal/domain"
	"ridebook/internal/seed"
	"ridebook/internal/storage"
	"ridebook/internal/store"
)

// ──────────────────────────────────────────────
// 3. DRIVER FLEET
// ──────────────────────────────────────────────

func newFleetStore(t *testing.T) *store.FleetStore {
	t.Helper()
	return store.NewFleetStore(context.Background(), storage.NewMemoryGateway(), seed.Drivers())
}

func TestFleetRegister_Defaults(t *testing.T) {
	t.Parallel()

	fleet := newFleetStore(t)

	driver, err := fleet.Register(context.Background(), store.RegisterDriverParams{
		Name:     "Vikram Joshi",
		Email:    "vikram.driver@example.com",
		Phone:    "+91 98989 12121",
		Password: "secret",
		Vehicle: domain.Vehicle{
			Type:        "sedan",
			Model:       "Honda City",
			Color:       "Silver",
			PlateNumber: "MH 01 XY 4455",
			Year:        2022,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three seeded drivers starting at 101, so the next id is 104.
	if driver.ID != 104 {
		t.Errorf("new driver id = %d, want 104", driver.ID)
	}
	if driver.Status != domain.DriverStatusOffline {
		t.Errorf("new driver status = %s, want offline", driver.Status)
	}
	if driver.IsVerified {
		t.Error("new drivers must start unverified")
	}
	if driver.Rating != 0 || driver.TotalRides != 0 || driver.TotalEarnings != 0 {
		t.Error("new driver should start with zero rating, rides and earnings")
	}

	if current := fleet.Current(); current == nil || current.ID != driver.ID {
		t.Error("expected registration to log the new driver in")
	}
}

func TestFleetStatusFilters(t *testing.T) {
	t.Parallel()

	fleet := newFleetStore(t)

	if got := len(fleet.Available()); got != 2 {
		t.Errorf("available drivers = %d, want 2", got)
	}
	if got := len(fleet.Busy()); got != 1 {
		t.Errorf("busy drivers = %d, want 1", got)
	}
	if got := len(fleet.Offline()); got != 0 {
		t.Errorf("offline drivers = %d, want 0", got)
	}
	if got := len(fleet.GetAll()); got != 3 {
		t.Errorf("all drivers = %d, want 3", got)
	}
}

func TestFleetUpdateStatus(t *testing.T) {
	t.Parallel()

	fleet := newFleetStore(t)
	ctx := context.Background()

	if _, err := fleet.Login(ctx, "raj.driver@example.com", "driver123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	driver, err := fleet.UpdateStatus(ctx, domain.DriverStatusBusy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if driver.Status != domain.DriverStatusBusy {
		t.Errorf("status = %s, want busy", driver.Status)
	}
	if got := len(fleet.Busy()); got != 2 {
		t.Errorf("busy drivers after update = %d, want 2", got)
	}

	if _, err := fleet.UpdateStatus(ctx, domain.DriverStatus("sleeping")); !errors.Is(err, store.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestFleetUpdateLocation(t *testing.T) {
	t.Parallel()

	fleet := newFleetStore(t)
	ctx := context.Background()

	if _, err := fleet.Login(ctx, "anil.driver@example.com", "driver123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loc := domain.Location{Address: "MG Road, Bengaluru", Coordinates: [2]float64{12.9758, 77.6063}}
	driver, err := fleet.UpdateLocation(ctx, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if driver.CurrentLocation != loc {
		t.Errorf("location = %+v, want %+v", driver.CurrentLocation, loc)
	}
}

func TestFleetEarningsAndRating(t *testing.T) {
	t.Parallel()

	fleet := newFleetStore(t)
	ctx := context.Background()

	if _, err := fleet.Register(ctx, store.RegisterDriverParams{
		Name:     "Vikram Joshi",
		Email:    "vikram.driver@example.com",
		Password: "secret",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First completed ride: earnings recorded before the rating lands.
	driver, err := fleet.RecordEarnings(ctx, 225)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if driver.TotalEarnings != 225 || driver.TotalRides != 1 {
		t.Errorf("after first ride: earnings=%d rides=%d, want 225/1", driver.TotalEarnings, driver.TotalRides)
	}

	driver, err = fleet.UpdateRating(ctx, 4.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if driver.Rating != 4.8 {
		t.Errorf("first rating = %v, want 4.8", driver.Rating)
	}

	// Second ride: the average folds in the new rating.
	if _, err := fleet.RecordEarnings(ctx, 150); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	driver, err = fleet.UpdateRating(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if driver.Rating != 4.9 {
		t.Errorf("second rating = %v, want 4.9", driver.Rating)
	}
	if driver.TotalEarnings != 375 {
		t.Errorf("total earnings = %d, want 375", driver.TotalEarnings)
	}

	if _, err := fleet.RecordEarnings(ctx, -10); !errors.Is(err, store.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for negative earnings, got %v", err)
	}
}

func TestFleetMutations_RequireLogin(t *testing.T) {
	t.Parallel()

	fleet := newFleetStore(t)
	ctx := context.Background()

	if _, err := fleet.UpdateStatus(ctx, domain.DriverStatusAvailable); !errors.Is(err, store.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from UpdateStatus, got %v", err)
	}
	if _, err := fleet.RecordEarnings(ctx, 100); !errors.Is(err, store.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from RecordEarnings, got %v", err)
	}
}
