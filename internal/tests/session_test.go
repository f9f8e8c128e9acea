package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"ridebook/internal/domain"
	"ridebook/internal/seed"
	"ridebook/internal/storage"
	"ridebook/internal/store"
)

// ──────────────────────────────────────────────
// 5. SESSION FACADE
// ──────────────────────────────────────────────

func newSession(t *testing.T, loginDelay time.Duration) *store.Session {
	t.Helper()
	gw := storage.NewMemoryGateway()
	accounts := store.NewAccountStore(context.Background(), gw, seed.Users())
	fleet := store.NewFleetStore(context.Background(), gw, seed.Drivers())
	return store.NewSession(accounts, fleet, "admin@ridebook.com", "admin123", loginDelay)
}

func TestSessionLogin_RoutesByActor(t *testing.T) {
	t.Parallel()

	session := newSession(t, 0)
	ctx := context.Background()

	result, err := session.Login(ctx, "rahul@example.com", "password123", domain.ActorUser)
	if err != nil {
		t.Fatalf("user login failed: %v", err)
	}
	if result.Actor != domain.ActorUser || result.User == nil || result.Driver != nil {
		t.Errorf("user login result = %+v, want a user identity", result)
	}

	result, err = session.Login(ctx, "raj.driver@example.com", "driver123", domain.ActorDriver)
	if err != nil {
		t.Fatalf("driver login failed: %v", err)
	}
	if result.Actor != domain.ActorDriver || result.Driver == nil || result.User != nil {
		t.Errorf("driver login result = %+v, want a driver identity", result)
	}

	// A rider credential does not open a driver session.
	if _, err := session.Login(ctx, "rahul@example.com", "password123", domain.ActorDriver); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for cross-actor login, got %v", err)
	}

	if _, err := session.Login(ctx, "rahul@example.com", "password123", domain.Actor("ghost")); !errors.Is(err, store.ErrInvalidActor) {
		t.Errorf("expected ErrInvalidActor, got %v", err)
	}
}

func TestSessionLogin_Admin(t *testing.T) {
	t.Parallel()

	session := newSession(t, 0)
	ctx := context.Background()

	result, err := session.Login(ctx, "admin@ridebook.com", "admin123", domain.ActorAdmin)
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if result.Actor != domain.ActorAdmin || result.User != nil || result.Driver != nil {
		t.Errorf("admin login result = %+v, want a bare admin identity", result)
	}

	if _, err := session.Login(ctx, "admin@ridebook.com", "wrong", domain.ActorAdmin); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionAuthState_UserWinsOverDriver(t *testing.T) {
	t.Parallel()

	session := newSession(t, 0)
	ctx := context.Background()

	if state := session.AuthState(); state.Authenticated {
		t.Fatal("expected an unauthenticated state before any login")
	}

	if _, err := session.Login(ctx, "raj.driver@example.com", "driver123", domain.ActorDriver); err != nil {
		t.Fatalf("driver login failed: %v", err)
	}
	if _, err := session.Login(ctx, "priya@example.com", "password123", domain.ActorUser); err != nil {
		t.Fatalf("user login failed: %v", err)
	}

	state := session.AuthState()
	if !state.Authenticated || state.Actor != domain.ActorUser {
		t.Errorf("auth state actor = %s, want user to win", state.Actor)
	}
	if state.DisplayName != "Priya Patel" {
		t.Errorf("display name = %q, want %q", state.DisplayName, "Priya Patel")
	}
}

func TestSessionLogout_ClearsBothIdentities(t *testing.T) {
	t.Parallel()

	session := newSession(t, 0)
	ctx := context.Background()

	if _, err := session.Login(ctx, "raj.driver@example.com", "driver123", domain.ActorDriver); err != nil {
		t.Fatalf("driver login failed: %v", err)
	}
	if _, err := session.Login(ctx, "rahul@example.com", "password123", domain.ActorUser); err != nil {
		t.Fatalf("user login failed: %v", err)
	}

	session.Logout(ctx)

	if state := session.AuthState(); state.Authenticated {
		t.Errorf("expected an unauthenticated state after logout, got %+v", state)
	}
}

func TestSessionLogin_DelayHonorsContext(t *testing.T) {
	t.Parallel()

	session := newSession(t, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := session.Login(ctx, "rahul@example.com", "password123", domain.ActorUser)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}
