package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"watchparty/internal/auth"
	"watchparty/internal/metrics"
	"watchparty/internal/models"
	repo "watchparty/internal/repository"
	"watchparty/internal/worker"
)

type UserService struct {
	r repo.Users
	auditor
}

func NewUserService(r repo.Users, logs repo.AuditLogs, wp *worker.Pool) *UserService {
	return &UserService{r: r, auditor: auditor{logs: logs, wp: wp}}
}

// keyAttempts bounds the regenerate-on-collision loop for the unique api_key
// index. A collision on a 40-char random key is effectively theoretical.
const keyAttempts = 5

// Signup creates a user with randomized placeholder credentials. The
// placeholder password is stored only as a bcrypt hash; the caller learns the
// api_key, which is the sole credential for protected operations.
func (s *UserService) Signup(ctx context.Context) (models.User, error) {
	name := "Unnamed User #" + randomDigits(6)
	password, err := auth.NewPassword()
	if err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	for i := 0; i < keyAttempts; i++ {
		key, err := auth.NewAPIKey()
		if err != nil {
			return models.User{}, err
		}
		u, err := s.r.Create(ctx, name, hash, key)
		if errors.Is(err, repo.ErrConflict) {
			continue
		}
		if err != nil {
			return models.User{}, err
		}
		metrics.SignupsTotal.Inc()
		s.record("user", u.ID, "signup", "")
		return u, nil
	}
	return models.User{}, fmt.Errorf("signup: could not allocate a unique api key")
}

// Login matches name and password against stored users. Names are not
// unique, so every user carrying the name is checked.
func (s *UserService) Login(ctx context.Context, name, password string) (models.User, error) {
	candidates, err := s.r.ListByName(ctx, name)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range candidates {
		if auth.VerifyPassword(password, u.PasswordHash) == nil {
			metrics.LoginsTotal.WithLabelValues("ok").Inc()
			s.record("user", u.ID, "login", "")
			return u, nil
		}
	}
	metrics.LoginsTotal.WithLabelValues("failed").Inc()
	return models.User{}, ErrInvalidCredentials
}

func (s *UserService) UpdateName(ctx context.Context, userID int64, newName string) error {
	if err := s.r.UpdateName(ctx, userID, newName); err != nil {
		return err
	}
	s.record("user", userID, "name_change", newName)
	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID int64, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.r.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	s.record("user", userID, "password_change", "")
	return nil
}

// ResolveAPIKey is the gate's lookup: exact match of the presented key
// against the stored one.
func (s *UserService) ResolveAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	u, err := s.r.GetByAPIKey(ctx, apiKey)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrInvalidKey
	}
	return u, err
}

// randomDigits generates display-name suffixes. Names are not secrets;
// math/rand is fine here.
func randomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.IntN(10))
	}
	return string(b)
}
