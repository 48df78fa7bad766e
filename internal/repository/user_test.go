package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiketbola/matchrec/internal/repository/dao"
)

type fakeUserDAO struct {
	users     map[uint]dao.User
	purchases map[uint][]dao.PurchaseRecord
	err       error
}

func (f *fakeUserDAO) Insert(_ context.Context, user dao.User) (dao.User, error) {
	return user, f.err
}

func (f *fakeUserDAO) FindByID(_ context.Context, id uint) (dao.User, error) {
	user, ok := f.users[id]
	if !ok {
		return dao.User{}, dao.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserDAO) FindByEmail(context.Context, string) (dao.User, error) {
	return dao.User{}, dao.ErrUserNotFound
}

func (f *fakeUserDAO) FindWithPurchases(_ context.Context, id uint) (dao.User, error) {
	if f.err != nil {
		return dao.User{}, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return dao.User{}, dao.ErrUserNotFound
	}
	user.Purchases = f.purchases[id]
	return user, nil
}

func (f *fakeUserDAO) InsertPurchase(_ context.Context, record dao.PurchaseRecord) (dao.PurchaseRecord, error) {
	return record, f.err
}

func (f *fakeUserDAO) FindPurchasesByUserID(_ context.Context, userID uint) ([]dao.PurchaseRecord, error) {
	return f.purchases[userID], f.err
}

func TestFindWithPurchases(t *testing.T) {
	purchasedAt := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := NewUserRepository(&fakeUserDAO{
		users: map[uint]dao.User{
			1: {ID: 1, Email: "bobotoh@example.com", FavoriteTeam: "Persib"},
		},
		purchases: map[uint][]dao.PurchaseRecord{
			1: {
				{ID: 1, UserID: 1, MatchID: 1, HomeTeam: "Persib", AwayTeam: "PSBS Biak", Quantity: 2, PurchasedAt: purchasedAt},
			},
		},
	})

	user, found, err := repo.FindWithPurchases(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Persib", user.FavoriteTeam)
	require.Len(t, user.PurchaseHistory, 1)
	assert.Equal(t, "PSBS Biak", user.PurchaseHistory[0].AwayTeam)
	assert.Equal(t, purchasedAt, user.PurchaseHistory[0].PurchasedAt)
}

func TestFindWithPurchasesAbsentUser(t *testing.T) {
	repo := NewUserRepository(&fakeUserDAO{users: map[uint]dao.User{}})

	_, found, err := repo.FindWithPurchases(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindWithPurchasesStoreFailure(t *testing.T) {
	repo := NewUserRepository(&fakeUserDAO{err: errors.New("connection reset")})

	_, found, err := repo.FindWithPurchases(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, found)
}
