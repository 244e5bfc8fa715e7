// Package session holds the authenticated user of one client session.
//
// A Store is created by the composition root for each client session and
// restored once from its Persister. Login and Register simulate backend
// latency; both observe their context and are discarded when the session
// changed underneath them.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/metrics"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

var (
	// ErrInvalidCredentials is what an Authenticator returns for an unknown
	// email or a wrong password. Login turns it into a plain false.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSuperseded means another mutation landed while a call was in flight.
	ErrSuperseded = errors.New("session changed while the request was in flight")
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required"`
	ConfirmPassword string          `json:"confirm_password" validate:"required,eqfield=Password"`
	UserType        models.UserType `json:"user_type" validate:"required,oneof=freelancer client"`
}

// Authenticator is the account backend behind the store.
type Authenticator interface {
	Authenticate(email, password string) (*dto.UserDTO, error)
	Register(input RegisterInput) (*dto.UserDTO, error)
}

type Store struct {
	mu         sync.Mutex
	user       *dto.UserDTO
	generation uint64

	auth      Authenticator
	persister Persister
	latency   time.Duration
}

// NewStore restores the persisted user, if any. An unreadable record is
// dropped and the session starts unauthenticated.
func NewStore(auth Authenticator, persister Persister, latency time.Duration) *Store {
	s := &Store{
		auth:      auth,
		persister: persister,
		latency:   latency,
	}

	data, err := persister.Load()
	if err != nil {
		logger.L().Warn("Failed to load persisted session", zap.Error(err))
		return s
	}
	if len(data) == 0 {
		return s
	}

	var user dto.UserDTO
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		logger.L().Warn("Discarding malformed persisted session", zap.Error(err))
		if err := persister.Clear(); err != nil {
			logger.L().Warn("Failed to clear persisted session", zap.Error(err))
		}
		return s
	}
	s.user = &user
	return s
}

// CurrentUser returns a copy of the signed-in user.
func (s *Store) CurrentUser() (dto.UserDTO, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return dto.UserDTO{}, false
	}
	return *s.user, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Login verifies the credentials after the simulated latency. Unknown
// accounts and wrong passwords yield false with the state untouched.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	gen := s.currentGeneration()
	if err := s.simulate(ctx); err != nil {
		return false, err
	}

	user, err := s.auth.Authenticate(email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		metrics.IncrementSessionEvent("login", false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("authenticate: %w", err)
	}

	if err := s.commit(ctx, gen, user); err != nil {
		return false, err
	}
	metrics.IncrementSessionEvent("login", true)
	logger.L().Info("User logged in", zap.String("user_id", user.ID))
	return true, nil
}

// Register creates the account and signs it in.
func (s *Store) Register(ctx context.Context, input RegisterInput) (bool, error) {
	gen := s.currentGeneration()
	if err := s.simulate(ctx); err != nil {
		return false, err
	}
	if err := s.check(ctx, gen); err != nil {
		return false, err
	}

	user, err := s.auth.Register(input)
	if err != nil {
		metrics.IncrementSessionEvent("register", false)
		return false, err
	}

	if err := s.commit(ctx, gen, user); err != nil {
		return false, err
	}
	metrics.IncrementSessionEvent("register", true)
	logger.L().Info("User registered", zap.String("user_id", user.ID), zap.String("user_type", string(user.UserType)))
	return true, nil
}

// Refresh replaces the signed-in user with a newer copy of the same account.
func (s *Store) Refresh(user dto.UserDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.ID != user.ID {
		return ErrSuperseded
	}
	if err := s.save(&user); err != nil {
		return err
	}
	s.user = &user
	s.generation++
	return nil
}

// Logout clears memory and the persisted copy. Calling it twice is harmless.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasSignedIn := s.user != nil
	s.user = nil
	s.generation++
	if err := s.persister.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if wasSignedIn {
		metrics.IncrementSessionEvent("logout", true)
	}
	return nil
}

func (s *Store) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Store) simulate(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Store) check(ctx context.Context, gen uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkLocked(ctx, gen)
}

func (s *Store) checkLocked(ctx context.Context, gen uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.generation != gen {
		return ErrSuperseded
	}
	return nil
}

func (s *Store) commit(ctx context.Context, gen uint64, user *dto.UserDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(ctx, gen); err != nil {
		return err
	}
	if err := s.save(user); err != nil {
		return err
	}
	s.user = user
	s.generation++
	return nil
}

func (s *Store) save(user *dto.UserDTO) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.persister.Save(data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
