package waitlist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyJoined = errors.New("email already on waitlist")
	ErrInvalidEntry  = errors.New("name and email are required")
)

// Entry is a signup on the product waitlist.
type Entry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Repository is the persistence port for waitlist signups.
type Repository interface {
	// Create persists the entry; duplicate emails yield ErrAlreadyJoined.
	Create(ctx context.Context, e Entry) error
	Exists(ctx context.Context, email string) (bool, error)
}

type UseCase interface {
	Join(ctx context.Context, name, email string) error
	Joined(ctx context.Context, email string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Join(ctx context.Context, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return ErrInvalidEntry
	}
	e := Entry{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		JoinedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, e)
}

func (s *service) Joined(ctx context.Context, email string) (bool, error) {
	return s.repo.Exists(ctx, strings.ToLower(strings.TrimSpace(email)))
}
