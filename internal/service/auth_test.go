package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/repository"
)

type fakeAuthRepo struct {
	byEmail map[string]domain.User
	created []domain.User
}

func (f *fakeAuthRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = uint(len(f.created) + 1)
	f.created = append(f.created, user)
	if f.byEmail == nil {
		f.byEmail = map[string]domain.User{}
	}
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestSignupHashesPassword(t *testing.T) {
	repo := &fakeAuthRepo{}
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:        "bobotoh@example.com",
		Password:     "password1",
		Name:         "Asep",
		FavoriteTeam: "Persib",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "password1", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password1")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := &fakeAuthRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "a@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestLogin(t *testing.T) {
	repo := &fakeAuthRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "a@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	_, err = svc.Login(context.Background(), "a@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "password1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
