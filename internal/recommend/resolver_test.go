package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiketbola/matchrec/internal/domain"
)

type fakeUserStore struct {
	users map[uint]domain.User
	err   error
}

func (f *fakeUserStore) FindWithPurchases(_ context.Context, userID uint) (domain.User, bool, error) {
	if f.err != nil {
		return domain.User{}, false, f.err
	}
	user, ok := f.users[userID]
	return user, ok, nil
}

type fakeOracle struct {
	scores    []float64
	err       error
	available bool
	calls     int
}

func (f *fakeOracle) Available() bool {
	return f.available
}

func (f *fakeOracle) Score(context.Context, Feature) ([]float64, error) {
	f.calls++
	if f.err != nil {
		f.available = false
		return nil, f.err
	}
	return f.scores, nil
}

func historyUser() domain.User {
	return domain.User{
		ID:           1,
		FavoriteTeam: "Persib",
		PurchaseHistory: []domain.PurchaseRecord{
			{ID: 1, MatchID: 1, HomeTeam: "Persib", AwayTeam: "PSBS Biak", Quantity: 2},
		},
	}
}

func TestResolveHistoryUnscored(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	resolver := NewResolver(users, NewCatalog(testMatches()), nil)

	items, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, 0.0, items[0].Score)
	assert.Equal(t, domain.ActionBuyAgain, items[0].SuggestedAction)
}

func TestResolveColdStartUnscored(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{}}
	resolver := NewResolver(users, NewCatalog(testMatches()), nil)

	items, err := resolver.Resolve(context.Background(), 99, "Arema")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, uint(3), items[0].ID)
	assert.Equal(t, 0.0, items[0].Score)
	assert.Equal(t, domain.ActionNewForYou, items[0].SuggestedAction)
}

func TestResolveMissingFavoriteTeam(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{}}
	resolver := NewResolver(users, NewCatalog(testMatches()), nil)

	_, err := resolver.Resolve(context.Background(), 99, "")
	assert.ErrorIs(t, err, ErrMissingFavoriteTeam)
}

func TestResolveMissingFavoriteTeamBeforeOracleCall(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{}}
	scorer := &fakeOracle{available: true, scores: []float64{0.1, 0.2, 0.3}}
	resolver := NewResolver(users, NewCatalog(testMatches()), scorer)

	_, err := resolver.Resolve(context.Background(), 99, "")
	assert.ErrorIs(t, err, ErrMissingFavoriteTeam)
	assert.Zero(t, scorer.calls)
}

func TestResolveHistoryScored(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	scorer := &fakeOracle{available: true, scores: []float64{0.2, 0.9, 0.5}}
	resolver := NewResolver(users, NewCatalog(testMatches()), scorer)

	items, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, uint(2), items[0].ID)
	assert.Equal(t, 0.9, items[0].Score)
	assert.Equal(t, uint(3), items[1].ID)
	assert.Equal(t, 0.5, items[1].Score)
	assert.Equal(t, uint(1), items[2].ID)
	assert.Equal(t, 0.2, items[2].Score)
}

func TestResolveScoredTiesKeepCatalogOrder(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	scorer := &fakeOracle{available: true, scores: []float64{0.5, 0.5, 0.9}}
	resolver := NewResolver(users, NewCatalog(testMatches()), scorer)

	items, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, uint(3), items[0].ID)
	assert.Equal(t, uint(1), items[1].ID)
	assert.Equal(t, uint(2), items[2].ID)
}

func TestResolveScoredShortVectorDiscards(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	scorer := &fakeOracle{available: true, scores: []float64{0.9}}
	resolver := NewResolver(users, NewCatalog(testMatches()), scorer)

	items, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResolveOracleFailureFallsBackUnscored(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	scorer := &fakeOracle{available: true, err: errors.New("model exploded")}
	resolver := NewResolver(users, NewCatalog(testMatches()), scorer)

	items, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, 0.0, items[0].Score)
	assert.Equal(t, domain.ActionBuyAgain, items[0].SuggestedAction)

	// The adapter degraded itself; later requests skip the oracle.
	items, err = resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, scorer.calls)
}

func TestResolveEmptyCatalogNeverErrors(t *testing.T) {
	empty := NewCatalog(nil)
	user := historyUser()

	paths := []struct {
		name   string
		users  *fakeUserStore
		oracle ScoringOracle
		fav    string
	}{
		{"cold-start/unscored", &fakeUserStore{users: map[uint]domain.User{}}, nil, "Arema"},
		{"cold-start/scored", &fakeUserStore{users: map[uint]domain.User{}}, &fakeOracle{available: true}, "Arema"},
		{"history/unscored", &fakeUserStore{users: map[uint]domain.User{1: user}}, nil, ""},
		{"history/scored", &fakeUserStore{users: map[uint]domain.User{1: user}}, &fakeOracle{available: true}, ""},
	}

	for _, tt := range paths {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(tt.users, empty, tt.oracle)

			items, err := resolver.Resolve(context.Background(), 1, tt.fav)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestResolveCatalogUnavailable(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	resolver := NewResolver(users, NewUnavailableCatalog(errors.New("load failed")), nil)

	_, err := resolver.Resolve(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestResolveUserStoreFailureSurfaces(t *testing.T) {
	users := &fakeUserStore{err: errors.New("connection refused")}
	resolver := NewResolver(users, NewCatalog(testMatches()), nil)

	_, err := resolver.Resolve(context.Background(), 1, "Persib")
	assert.Error(t, err)
}

func TestResolveTruncatesToTen(t *testing.T) {
	matches := make([]domain.Match, 15)
	for i := range matches {
		matches[i] = domain.Match{
			ID:       uint(i + 1),
			HomeTeam: "Persib",
			AwayTeam: "Persija",
		}
	}

	users := &fakeUserStore{users: map[uint]domain.User{}}
	resolver := NewResolver(users, NewCatalog(matches), nil)

	items, err := resolver.Resolve(context.Background(), 99, "Persib")
	require.NoError(t, err)
	require.Len(t, items, MaxRecommendations)

	// Catalog order preserved up to the cut.
	for i, item := range items {
		assert.Equal(t, uint(i+1), item.ID)
	}
}

func TestResolveStoredFavoriteTeamFallback(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{
		2: {ID: 2, FavoriteTeam: "Persebaya"},
	}}
	resolver := NewResolver(users, NewCatalog(testMatches()), nil)

	items, err := resolver.Resolve(context.Background(), 2, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ID)
}

func TestResolveIdempotent(t *testing.T) {
	users := &fakeUserStore{users: map[uint]domain.User{1: historyUser()}}
	resolver := NewResolver(users, NewCatalog(testMatches()), nil)

	first, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), 1, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
