package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserRepo struct {
	byEmail map[string]User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: map[string]User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, user User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type staticTokens struct{ token string }

func (s staticTokens) Generate(context.Context, User) (string, error) { return s.token, nil }

func TestRegister(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(repo, staticTokens{token: "tok"})

	res, err := svc.Register(context.Background(), "  Dana  ", " Dana@Example.COM ", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "Dana", res.User.Name)
	assert.Equal(t, "dana@example.com", res.User.Email)
	assert.NotEqual(t, "hunter2", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("hunter2")))

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "Other", "dana@example.com", "pw")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("blank fields", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "", "x@example.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = svc.Register(context.Background(), "Name", "   ", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = svc.Register(context.Background(), "Name", "x@example.com", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(repo, staticTokens{token: "tok"})
	reg, err := svc.Register(context.Background(), "Dana", "dana@example.com", "hunter2")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), "DANA@example.com ", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, reg.User.ID, res.User.ID)
		assert.Equal(t, "tok", res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "dana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestProfile(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(repo, staticTokens{token: "tok"})
	reg, err := svc.Register(context.Background(), "Dana", "dana@example.com", "hunter2")
	require.NoError(t, err)

	u, err := svc.Profile(context.Background(), reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", u.Email)

	_, err = svc.Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
