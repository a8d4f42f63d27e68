// Package urlstore keeps the in-memory registry of short URL records.
package urlstore

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/models"
)

var (
	ErrDuplicateLongURL = errors.New("long url already shortened")
	ErrNotFound         = errors.New("short code not found")
	ErrForbidden        = errors.New("requester does not own this record")
	ErrGenerateCode     = errors.New("failed to generate unique short code")
)

const maxGenerateAttempts = 10

type codeGenerator interface {
	Generate() string
}

// Store maps short codes to URL records. It keeps a reverse index by
// long URL so duplicate submissions are rejected in O(1) regardless
// of owner. All mutations take the write lock; reads share the read
// lock and always observe a whole record.
type Store struct {
	mu      sync.RWMutex
	records map[string]models.URLRecord
	byLong  map[string]string
	gen     codeGenerator
	logger  *zap.Logger
}

func New(gen codeGenerator, logger *zap.Logger) *Store {
	return &Store{
		records: make(map[string]models.URLRecord),
		byLong:  make(map[string]string),
		gen:     gen,
		logger:  logger,
	}
}

// Create inserts a record for longURL owned by ownerID and returns
// its freshly generated short code. A long URL already present in the
// registry is rejected no matter who owns it.
func (s *Store) Create(longURL, ownerID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byLong[longURL]; exists {
		return "", ErrDuplicateLongURL
	}

	var code string
	var attempts int
	for attempts = 0; attempts < maxGenerateAttempts; attempts++ {
		code = s.gen.Generate()
		if _, exists := s.records[code]; !exists {
			break
		}
	}
	if attempts == maxGenerateAttempts {
		s.logger.Error("Failed to generate unique short code after max attempts")
		return "", ErrGenerateCode
	}

	s.records[code] = models.URLRecord{
		ShortCode: code,
		LongURL:   longURL,
		OwnerID:   ownerID,
	}
	s.byLong[longURL] = code

	s.logger.Info("Short URL created",
		zap.String("shortCode", code),
		zap.String("ownerID", ownerID))

	return code, nil
}

func (s *Store) Get(code string) (models.URLRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[code]
	return rec, ok
}

// HasLongURL reports whether any record already points at longURL.
func (s *Store) HasLongURL(longURL string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byLong[longURL]
	return ok
}

// ListByOwner returns the records owned by ownerID, keyed by short
// code. The result is a copy and safe to use after the call.
func (s *Store) ListByOwner(ownerID string) map[string]models.URLRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make(map[string]models.URLRecord)
	for code, rec := range s.records {
		if rec.OwnerID == ownerID {
			owned[code] = rec
		}
	}
	return owned
}

// UpdateLongURL overwrites the target URL of an existing record. Only
// the owner may update. The new value is not checked for uniqueness
// against other records; updates are deliberately permissive, unlike
// Create.
func (s *Store) UpdateLongURL(code, newLongURL, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[code]
	if !ok {
		return ErrNotFound
	}
	if rec.OwnerID != requesterID {
		return ErrForbidden
	}

	// Release the reverse index entry for the old target so the old
	// URL can be shortened again later.
	if s.byLong[rec.LongURL] == code {
		delete(s.byLong, rec.LongURL)
	}

	rec.LongURL = newLongURL
	s.records[code] = rec

	if _, taken := s.byLong[newLongURL]; !taken {
		s.byLong[newLongURL] = code
	}

	return nil
}

// Delete removes a record entirely. Only the owner may delete.
func (s *Store) Delete(code, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[code]
	if !ok {
		return ErrNotFound
	}
	if rec.OwnerID != requesterID {
		return ErrForbidden
	}

	delete(s.records, code)
	if s.byLong[rec.LongURL] == code {
		delete(s.byLong, rec.LongURL)
	}

	s.logger.Info("Short URL deleted",
		zap.String("shortCode", code),
		zap.String("ownerID", requesterID))

	return nil
}
