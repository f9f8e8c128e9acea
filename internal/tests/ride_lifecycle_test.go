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
// 4. RIDE LIFECYCLE
// ──────────────────────────────────────────────

func newRideStore(t *testing.T) *store.RideStore {
	t.Helper()
	return store.NewRideStore(context.Background(), storage.NewMemoryGateway(), nil)
}

func requestRide(t *testing.T, rides *store.RideStore) *domain.Ride {
	t.Helper()
	ride, err := rides.Request(context.Background(), store.RequestRideParams{
		UserID:            1,
		Pickup:            domain.Location{Address: "Anna Nagar", Coordinates: [2]float64{13.0850, 80.2101}},
		Drop:              domain.Location{Address: "T Nagar", Coordinates: [2]float64{13.0418, 80.2341}},
		RideType:          domain.RideTypeSedan,
		DistanceKm:        10,
		EstimatedDuration: "25 mins",
	})
	if err != nil {
		t.Fatalf("unexpected error requesting ride: %v", err)
	}
	return ride
}

func TestRideRequest_ComputesFareAndSetsActivePointer(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ride := requestRide(t, rides)

	if ride.Status != domain.RideStatusRequested {
		t.Errorf("status = %s, want requested", ride.Status)
	}
	// (30 + 10*12) * 1.5 for a sedan.
	if ride.Fare != 225 {
		t.Errorf("fare = %d, want 225", ride.Fare)
	}
	if ride.Distance != "10.0 km" {
		t.Errorf("distance = %q, want %q", ride.Distance, "10.0 km")
	}
	if ride.DriverID != 0 {
		t.Errorf("driver id = %d, want 0 before accept", ride.DriverID)
	}
	if ride.RequestedAt.IsZero() {
		t.Error("expected requested timestamp to be set")
	}

	active := rides.ActiveUserRide()
	if active == nil || active.ID != ride.ID {
		t.Error("expected the new ride to be the rider's active ride")
	}
	if rides.ActiveDriverRide() != nil {
		t.Error("expected no active driver ride before accept")
	}
}

func TestRideRequest_CallerSuppliedFareWins(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ride, err := rides.Request(context.Background(), store.RequestRideParams{
		UserID:     1,
		RideType:   domain.RideTypeMini,
		DistanceKm: 5,
		Fare:       180,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ride.Fare != 180 {
		t.Errorf("fare = %d, want the caller-supplied 180", ride.Fare)
	}
}

func TestRideLifecycle_FullHappyPath(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	accepted, err := rides.Accept(ctx, ride.ID, 101)
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if accepted.Status != domain.RideStatusAccepted || accepted.DriverID != 101 {
		t.Errorf("after accept: status=%s driver=%d, want accepted/101", accepted.Status, accepted.DriverID)
	}
	if accepted.AcceptedAt.IsZero() {
		t.Error("expected accepted timestamp to be set")
	}
	if active := rides.ActiveDriverRide(); active == nil || active.ID != ride.ID {
		t.Error("expected accept to set the driver's active ride")
	}

	started, err := rides.Start(ctx, ride.ID)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if started.Status != domain.RideStatusStarted || started.StartedAt.IsZero() {
		t.Error("expected started status with a timestamp")
	}

	completed, err := rides.Complete(ctx, ride.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != domain.RideStatusCompleted || completed.CompletedAt.IsZero() {
		t.Error("expected completed status with a timestamp")
	}

	paid, err := rides.MarkPaid(ctx, ride.ID, domain.PaymentMethodUPI)
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	if paid.Status != domain.RideStatusPaid || paid.PaymentMethod != domain.PaymentMethodUPI {
		t.Errorf("after pay: status=%s method=%s, want paid/upi", paid.Status, paid.PaymentMethod)
	}
	if paid.PaidAt.IsZero() {
		t.Error("expected paid timestamp to be set")
	}

	// Payment retires the ride for both sides.
	if rides.ActiveUserRide() != nil {
		t.Error("expected no active user ride after payment")
	}
	if rides.ActiveDriverRide() != nil {
		t.Error("expected no active driver ride after payment")
	}
}

func TestRideTransitions_GuardsRejectOutOfOrderMoves(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	// Starting a ride no driver has accepted must fail and change nothing.
	if _, err := rides.Start(ctx, ride.ID); !errors.Is(err, store.ErrRideNotAccepted) {
		t.Fatalf("expected ErrRideNotAccepted, got %v", err)
	}
	unchanged, err := rides.GetByID(ride.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unchanged.Status != domain.RideStatusRequested || !unchanged.StartedAt.IsZero() {
		t.Error("expected a failed start to leave the ride untouched")
	}

	if _, err := rides.Complete(ctx, ride.ID); !errors.Is(err, store.ErrRideNotStarted) {
		t.Errorf("expected ErrRideNotStarted, got %v", err)
	}
	if _, err := rides.MarkPaid(ctx, ride.ID, domain.PaymentMethodCash); !errors.Is(err, store.ErrRideNotCompleted) {
		t.Errorf("expected ErrRideNotCompleted, got %v", err)
	}
}

func TestRideAccept_SecondAcceptCannotReassignDriver(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	if _, err := rides.Accept(ctx, ride.ID, 101); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	_, err := rides.Accept(ctx, ride.ID, 102)
	if !errors.Is(err, store.ErrRideNotRequested) {
		t.Fatalf("expected ErrRideNotRequested, got %v", err)
	}

	current, err := rides.GetByID(ride.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.DriverID != 101 {
		t.Errorf("driver id = %d, want the original 101", current.DriverID)
	}
}

func TestRideCancel_ByUser_LeavesDriverPointerAlone(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	if _, err := rides.Accept(ctx, ride.ID, 101); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	cancelled, err := rides.Cancel(ctx, ride.ID, "Changed my plans", domain.ActorUser)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != domain.RideStatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.CancellationReason != "Changed my plans" || cancelled.CancelledBy != domain.ActorUser {
		t.Error("expected the cancellation reason and actor to be recorded")
	}

	if rides.ActiveUserRide() != nil {
		t.Error("expected the rider's active pointer to be cleared")
	}
	// The driver's pointer still references the ride until they clear it.
	if active := rides.ActiveDriverRide(); active == nil || active.ID != ride.ID {
		t.Error("expected the driver's active pointer to survive a user cancel")
	}
}

func TestRideCancel_ByDriver_ClearsBothPointers(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	if _, err := rides.Accept(ctx, ride.ID, 101); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if _, err := rides.Cancel(ctx, ride.ID, "Vehicle breakdown", domain.ActorDriver); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if rides.ActiveUserRide() != nil || rides.ActiveDriverRide() != nil {
		t.Error("expected both active pointers cleared after a driver cancel")
	}
}

func TestRideCancel_OnlyFromRequestedOrAccepted(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	if _, err := rides.Accept(ctx, ride.ID, 101); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if _, err := rides.Start(ctx, ride.ID); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err := rides.Cancel(ctx, ride.ID, "Too late", domain.ActorUser)
	if !errors.Is(err, store.ErrRideNotCancellable) {
		t.Fatalf("expected ErrRideNotCancellable, got %v", err)
	}

	current, getErr := rides.GetByID(ride.ID)
	if getErr != nil {
		t.Fatalf("unexpected error: %v", getErr)
	}
	if current.Status != domain.RideStatusStarted {
		t.Error("expected a rejected cancel to leave the ride started")
	}
	if active := rides.ActiveUserRide(); active == nil || active.ID != ride.ID {
		t.Error("expected a rejected cancel to leave the active pointer in place")
	}
}

func TestRideRate_BothSides(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	rated, err := rides.Rate(ctx, ride.ID, 5, "Smooth ride", domain.ActorUser)
	if err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if rated.UserRating != 5 || rated.UserReview != "Smooth ride" {
		t.Error("expected the rider's rating and review to be recorded")
	}
	if rated.DriverRating != 0 {
		t.Error("expected the driver's rating to be untouched")
	}

	rated, err = rides.Rate(ctx, ride.ID, 4.5, "Polite passenger", domain.ActorDriver)
	if err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if rated.DriverRating != 4.5 || rated.DriverReview != "Polite passenger" {
		t.Error("expected the driver's rating and review to be recorded")
	}

	if _, err := rides.Rate(ctx, ride.ID, 6, "", domain.ActorUser); !errors.Is(err, store.ErrInvalidRating) {
		t.Errorf("expected ErrInvalidRating, got %v", err)
	}
	if _, err := rides.Rate(ctx, ride.ID, 4, "", domain.ActorAdmin); !errors.Is(err, store.ErrInvalidActor) {
		t.Errorf("expected ErrInvalidActor, got %v", err)
	}
}

func TestRideSeedFixtures_QueriesAndFilters(t *testing.T) {
	t.Parallel()

	rides := store.NewRideStore(context.Background(), storage.NewMemoryGateway(), seed.Rides())

	if got := len(rides.GetAll()); got != 6 {
		t.Fatalf("seeded rides = %d, want 6", got)
	}
	if got := len(rides.AvailableRides()); got != 1 {
		t.Errorf("available rides = %d, want 1 (only the requested one)", got)
	}
	if got := len(rides.UserHistory(1)); got != 3 {
		t.Errorf("user 1 history = %d rides, want 3", got)
	}
	if got := len(rides.DriverHistory(101)); got != 2 {
		t.Errorf("driver 101 history = %d rides, want 2", got)
	}

	if _, err := rides.GetByID("RIDE999"); !errors.Is(err, store.ErrRideNotFound) {
		t.Errorf("expected ErrRideNotFound, got %v", err)
	}
}

func TestRideRecomputeActivePointers(t *testing.T) {
	t.Parallel()

	rides := store.NewRideStore(context.Background(), storage.NewMemoryGateway(), seed.Rides())

	// Nothing is active until the pointers are rederived for known identities.
	if rides.ActiveUserRide() != nil || rides.ActiveDriverRide() != nil {
		t.Fatal("expected no active rides before recompute")
	}

	rides.RecomputeActivePointers(1, 103)

	user := rides.ActiveUserRide()
	if user == nil || user.ID != "RIDE001" {
		t.Errorf("active user ride = %+v, want RIDE001", user)
	}
	driver := rides.ActiveDriverRide()
	if driver == nil || driver.ID != "RIDE003" {
		t.Errorf("active driver ride = %+v, want RIDE003", driver)
	}

	// Driver id 0 must never match the unassigned rides.
	rides.RecomputeActivePointers(0, 0)
	if rides.ActiveUserRide() != nil || rides.ActiveDriverRide() != nil {
		t.Error("expected no active rides for the zero identities")
	}
}

func TestRideClearActiveRide(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	if _, err := rides.Accept(ctx, ride.ID, 101); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if err := rides.ClearActiveRide(domain.ActorDriver); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rides.ActiveDriverRide() != nil {
		t.Error("expected the driver pointer to be cleared")
	}
	if rides.ActiveUserRide() == nil {
		t.Error("expected the user pointer to be untouched")
	}

	if err := rides.ClearActiveRide(domain.ActorAdmin); !errors.Is(err, store.ErrInvalidActor) {
		t.Errorf("expected ErrInvalidActor, got %v", err)
	}
}

func TestRideUpdateLocation_LiveTracking(t *testing.T) {
	t.Parallel()

	rides := newRideStore(t)
	ctx := context.Background()
	ride := requestRide(t, rides)

	loc := domain.Location{Address: "Kathipara Junction", Coordinates: [2]float64{13.0067, 80.2014}}
	updated, err := rides.UpdateLocation(ctx, ride.ID, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CurrentLocation != loc {
		t.Errorf("current location = %+v, want %+v", updated.CurrentLocation, loc)
	}
	if updated.Status != domain.RideStatusRequested {
		t.Error("expected a location update to leave the status alone")
	}
}
