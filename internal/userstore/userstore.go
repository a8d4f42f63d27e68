// Package userstore keeps the in-memory registry of accounts.
package userstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mlevan/tinyapp/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNoSuchAccount  = errors.New("no account for this email")
	ErrWrongPassword  = errors.New("wrong password")
)

type Store struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
	logger  *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		logger:  logger,
	}
}

// Create registers a new account and returns its id. The email must
// not belong to an existing user (exact, case-sensitive match). The
// password is stored only as a bcrypt hash.
func (s *Store) Create(email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		s.logger.Warn("Attempt to register an already used email",
			zap.String("email", email))
		return "", ErrDuplicateEmail
	}

	id := uuid.New().String()
	s.users[id] = models.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
	}
	s.byEmail[email] = id

	s.logger.Info("User registered", zap.String("userID", id))

	return id, nil
}

func (s *Store) FindByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

func (s *Store) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.User{}, false
	}
	user, ok := s.users[id]
	return user, ok
}

// VerifyCredentials checks an email/password pair against the
// registry and returns the account id on success.
func (s *Store) VerifyCredentials(email, password string) (string, error) {
	user, ok := s.FindByEmail(email)
	if !ok {
		return "", ErrNoSuchAccount
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn("Failed login attempt", zap.String("email", email))
		return "", ErrWrongPassword
	}

	return user.ID, nil
}
