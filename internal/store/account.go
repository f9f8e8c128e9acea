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

// AccountStore owns the user collection and the currently authenticated user.
type AccountStore struct {
	mu      sync.RWMutex
	gw      storage.Gateway
	users   []domain.User
	current *domain.User // password-stripped projection, nil when logged out
}

// NewAccountStore creates an AccountStore, restoring the collection and the
// current-user pointer from the gateway, or seeding when no snapshot exists.
func NewAccountStore(ctx context.Context, gw storage.Gateway, seed []domain.User) *AccountStore {
	s := &AccountStore{gw: gw}

	if !loadSnapshot(ctx, gw, storage.KeyUsers, &s.users) {
		s.users = append([]domain.User(nil), seed...)
	}

	var currentID int
	if loadSnapshot(ctx, gw, storage.KeyCurrentUser, &currentID) {
		for i := range s.users {
			if s.users[i].ID == currentID {
				s.current = projectUser(s.users[i])
				break
			}
		}
	}

	return s
}

// projectUser copies a user record with the password stripped. The stored
// record keeps its password for future logins; only the projection handed to
// callers must not leak it.
func projectUser(u domain.User) *domain.User {
	u.Password = ""
	return &u
}

func (s *AccountStore) persist(ctx context.Context) {
	saveSnapshot(ctx, s.gw, storage.KeyUsers, s.users)
	if s.current != nil {
		saveSnapshot(ctx, s.gw, storage.KeyCurrentUser, s.current.ID)
	} else if err := s.gw.Delete(ctx, storage.KeyCurrentUser); err != nil {
		log.Printf("store: delete snapshot %q: %v", storage.KeyCurrentUser, err)
	}
}

// Login authenticates by exact email/password match. On success the matched
// record becomes the current user; on failure the current user is unchanged.
func (s *AccountStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			s.current = projectUser(s.users[i])
			s.persist(ctx)
			return projectUser(s.users[i]), nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the current user.
func (s *AccountStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.persist(ctx)
}

// RegisterUserParams contains the fields supplied at registration.
type RegisterUserParams struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register appends a new user with the next sequential id and default field
// values, and logs the new user in.
func (s *AccountStore) Register(ctx context.Context, p RegisterUserParams) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(p.Email)
	for i := range s.users {
		if s.users[i].Email == email {
			return nil, ErrEmailTaken
		}
	}

	user := domain.User{
		ID:         len(s.users) + 1,
		Name:       p.Name,
		Email:      email,
		Phone:      p.Phone,
		Password:   p.Password,
		JoinedDate: time.Now(),
	}

	s.users = append(s.users, user)
	s.current = projectUser(user)
	s.persist(ctx)

	return projectUser(user), nil
}

// UserProfilePatch contains optional profile updates; empty fields are unchanged.
type UserProfilePatch struct {
	Name         string
	Phone        string
	ProfileImage string
}

// UpdateProfile applies a patch to the current user.
func (s *AccountStore) UpdateProfile(ctx context.Context, patch UserProfilePatch) (*domain.User, error) {
	return s.mutateCurrent(ctx, func(u *domain.User) error {
		if patch.Name != "" {
			u.Name = patch.Name
		}
		if patch.Phone != "" {
			u.Phone = patch.Phone
		}
		if patch.ProfileImage != "" {
			u.ProfileImage = patch.ProfileImage
		}
		return nil
	})
}

// WalletOp says which way a wallet adjustment goes.
type WalletOp string

const (
	WalletAdd    WalletOp = "add"
	WalletDeduct WalletOp = "deduct"
)

// UpdateWallet adjusts the current user's wallet balance. The balance is not
// floored at zero; overdrafts are allowed.
func (s *AccountStore) UpdateWallet(ctx context.Context, amount int, op WalletOp) (*domain.User, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	return s.mutateCurrent(ctx, func(u *domain.User) error {
		switch op {
		case WalletAdd:
			u.WalletBalance += amount
		case WalletDeduct:
			u.WalletBalance -= amount
		default:
			return ErrInvalidAmount
		}
		return nil
	})
}

// IncrementRides adds one to the current user's ride counter.
func (s *AccountStore) IncrementRides(ctx context.Context) (*domain.User, error) {
	return s.mutateCurrent(ctx, func(u *domain.User) error {
		u.TotalRides++
		return nil
	})
}

// UpdateRating folds a new rating into the current user's running average.
// The fixed call order is IncrementRides first, then UpdateRating, so the
// previous rating count is TotalRides-1.
func (s *AccountStore) UpdateRating(ctx context.Context, newRating float64) (*domain.User, error) {
	if !validRating(newRating) {
		return nil, ErrInvalidRating
	}

	return s.mutateCurrent(ctx, func(u *domain.User) error {
		oldCount := u.TotalRides - 1
		u.AverageRating = runningAverage(u.AverageRating, oldCount, newRating)
		return nil
	})
}

// mutateCurrent applies fn to the current user's collection record under the
// lock, refreshes the projection and persists.
func (s *AccountStore) mutateCurrent(ctx context.Context, fn func(*domain.User) error) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}

	for i := range s.users {
		if s.users[i].ID == s.current.ID {
			if err := fn(&s.users[i]); err != nil {
				return nil, err
			}
			s.current = projectUser(s.users[i])
			s.persist(ctx)
			return projectUser(s.users[i]), nil
		}
	}

	return nil, ErrUserNotFound
}

// Current returns the authenticated user, or nil when logged out.
func (s *AccountStore) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// GetByID returns the user with the given id, password stripped.
func (s *AccountStore) GetByID(id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return projectUser(s.users[i]), nil
		}
	}
	return nil, ErrUserNotFound
}

// GetAll returns all users, passwords stripped.
func (s *AccountStore) GetAll() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for i := range s.users {
		u := s.users[i]
		u.Password = ""
		out = append(out, u)
	}
	return out
}
