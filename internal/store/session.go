package store

import (
	"context"
	"time"

	"ridebook/internal/domain"
)

// Session composes the account and fleet stores into one authenticated
// identity. It holds no collection of its own; auth state is derived from the
// two stores on every access.
type Session struct {
	accounts *AccountStore
	fleet    *FleetStore

	adminEmail    string
	adminPassword string
	loginDelay    time.Duration // simulated network latency, may be zero
}

// NewSession creates the session facade. adminEmail/adminPassword form the
// single admin credential pair; there is no admin collection behind them.
func NewSession(accounts *AccountStore, fleet *FleetStore, adminEmail, adminPassword string, loginDelay time.Duration) *Session {
	return &Session{
		accounts:      accounts,
		fleet:         fleet,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		loginDelay:    loginDelay,
	}
}

// LoginResult identifies who logged in.
type LoginResult struct {
	Actor  domain.Actor
	User   *domain.User   // set when Actor == ActorUser
	Driver *domain.Driver // set when Actor == ActorDriver
}

// Login authenticates against the store matching the actor type.
func (s *Session) Login(ctx context.Context, email, password string, actor domain.Actor) (*LoginResult, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	switch actor {
	case domain.ActorUser:
		user, err := s.accounts.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Actor: domain.ActorUser, User: user}, nil

	case domain.ActorDriver:
		driver, err := s.fleet.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Actor: domain.ActorDriver, Driver: driver}, nil

	case domain.ActorAdmin:
		if email == s.adminEmail && password == s.adminPassword {
			return &LoginResult{Actor: domain.ActorAdmin}, nil
		}
		return nil, ErrInvalidCredentials

	default:
		return nil, ErrInvalidActor
	}
}

// delay simulates network latency while honoring context cancellation.
func (s *Session) delay(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.loginDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Logout clears whichever identity is currently set.
func (s *Session) Logout(ctx context.Context) {
	if s.accounts.Current() != nil {
		s.accounts.Logout(ctx)
	}
	if s.fleet.Current() != nil {
		s.fleet.Logout(ctx)
	}
}

// AuthState is the unified identity view consumed by the presentation layer.
type AuthState struct {
	Authenticated bool
	Actor         domain.Actor
	DisplayName   string
	User          *domain.User
	Driver        *domain.Driver
}

// AuthState derives the current identity: a logged-in user wins over a
// logged-in driver; neither means unauthenticated.
func (s *Session) AuthState() AuthState {
	if user := s.accounts.Current(); user != nil {
		return AuthState{
			Authenticated: true,
			Actor:         domain.ActorUser,
			DisplayName:   user.Name,
			User:          user,
		}
	}

	if driver := s.fleet.Current(); driver != nil {
		return AuthState{
			Authenticated: true,
			Actor:         domain.ActorDriver,
			DisplayName:   driver.Name,
			Driver:        driver,
		}
	}

	return AuthState{}
}
