package waitlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	emails map[string]bool
}

func (r *memoryRepo) Create(_ context.Context, e Entry) error {
	if r.emails[e.Email] {
		return ErrAlreadyJoined
	}
	r.emails[e.Email] = true
	return nil
}

func (r *memoryRepo) Exists(_ context.Context, email string) (bool, error) {
	return r.emails[email], nil
}

func TestJoin(t *testing.T) {
	repo := &memoryRepo{emails: map[string]bool{}}
	svc := NewService(repo)

	require.NoError(t, svc.Join(context.Background(), " Dana ", " Dana@Example.COM "))
	assert.True(t, repo.emails["dana@example.com"])

	assert.ErrorIs(t, svc.Join(context.Background(), "Dana", "dana@example.com"), ErrAlreadyJoined)
	assert.ErrorIs(t, svc.Join(context.Background(), "", "x@example.com"), ErrInvalidEntry)
	assert.ErrorIs(t, svc.Join(context.Background(), "Dana", "   "), ErrInvalidEntry)
}

func TestJoined(t *testing.T) {
	repo := &memoryRepo{emails: map[string]bool{"dana@example.com": true}}
	svc := NewService(repo)

	ok, err := svc.Joined(context.Background(), " DANA@example.com ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Joined(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
