package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tiketbola/matchrec/internal/domain"
)

// MaxRecommendations bounds every resolution result.
const MaxRecommendations = 10

// UserStore is the external user projection the resolver reads. The
// second return value is false when no such user exists; that is not an
// error, it selects the cold-start path.
type UserStore interface {
	FindWithPurchases(ctx context.Context, userID uint) (domain.User, bool, error)
}

// Resolver orchestrates strategy selection, team extraction, catalog
// filtering and oracle ranking into one recommendation list. It holds no
// per-request state and performs no writes, so any number of resolutions
// may run concurrently.
type Resolver struct {
	users   UserStore
	catalog *Catalog
	oracle  ScoringOracle
}

// NewResolver wires the resolver's collaborators. oracle may be nil for
// deployments without a scoring model.
func NewResolver(users UserStore, catalog *Catalog, oracle ScoringOracle) *Resolver {
	return &Resolver{
		users:   users,
		catalog: catalog,
		oracle:  oracle,
	}
}

func (r *Resolver) oracleAvailable() bool {
	return r.oracle != nil && r.oracle.Available()
}

// Resolve produces at most MaxRecommendations items for the given user.
// favoriteTeam from the request wins over the stored profile value; an
// unknown userID is treated as a new user, not a failure.
func (r *Resolver) Resolve(ctx context.Context, userID uint, favoriteTeam string) ([]domain.RecommendationItem, error) {
	user, found, err := r.users.FindWithPurchases(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.users.FindWithPurchases -> %w", err)
	}

	favorite := strings.TrimSpace(favoriteTeam)
	if favorite == "" && found {
		favorite = strings.TrimSpace(user.FavoriteTeam)
	}

	hasHistory := found && len(user.PurchaseHistory) > 0
	path := Decide(hasHistory, r.oracleAvailable())

	if path.ColdStart() && favorite == "" {
		return nil, ErrMissingFavoriteTeam
	}

	zap.L().Debug("resolving recommendations",
		zap.Uint("user_id", userID),
		zap.Stringer("path", path),
	)

	switch path {
	case PathColdStartUnscored:
		return r.coldStartUnscored(favorite)

	case PathHistoryUnscored:
		return r.historyUnscored(user.PurchaseHistory)

	case PathColdStartScored:
		feature := Feature{UserID: userID, FavoriteTeam: favorite}
		return r.scored(ctx, feature, domain.ActionNewForYou, func() ([]domain.RecommendationItem, error) {
			return r.coldStartUnscored(favorite)
		})

	case PathHistoryScored:
		teams, _ := RelevantTeams(user.PurchaseHistory)
		names := teams.Names()
		sort.Strings(names)
		feature := Feature{UserID: userID, RelevantTeams: names}
		return r.scored(ctx, feature, domain.ActionBuyAgain, func() ([]domain.RecommendationItem, error) {
			return r.historyUnscored(user.PurchaseHistory)
		})

	default:
		return nil, ErrRecommendationUnavailable
	}
}

func (r *Resolver) coldStartUnscored(favorite string) ([]domain.RecommendationItem, error) {
	matches, err := r.catalog.FindByTeam(favorite)
	if err != nil {
		return nil, err
	}

	return buildItems(matches, domain.ActionNewForYou), nil
}

func (r *Resolver) historyUnscored(history []domain.PurchaseRecord) ([]domain.RecommendationItem, error) {
	teams, skipped := RelevantTeams(history)
	if skipped > 0 {
		zap.L().Warn("purchase history partially malformed",
			zap.Int("skipped_records", skipped),
			zap.Int("usable_records", len(history)-skipped),
		)
	}

	matches, err := r.catalog.FindByAnyTeam(teams)
	if err != nil {
		return nil, err
	}

	return buildItems(matches, domain.ActionBuyAgain), nil
}

// scored ranks the whole catalog by the oracle's per-row scores. An
// oracle failure falls back to the request's unscored path; the adapter
// itself degrades the deployment so later requests skip the oracle.
func (r *Resolver) scored(ctx context.Context, feature Feature, action string, fallback func() ([]domain.RecommendationItem, error)) ([]domain.RecommendationItem, error) {
	matches, err := r.catalog.All()
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []domain.RecommendationItem{}, nil
	}

	scores, err := r.oracle.Score(ctx, feature)
	if err != nil {
		zap.L().Warn("scoring oracle failed, falling back to unscored path", zap.Error(err))

		items, fallbackErr := fallback()
		if fallbackErr != nil {
			if errors.Is(fallbackErr, ErrCatalogUnavailable) || errors.Is(fallbackErr, ErrMissingFavoriteTeam) {
				return nil, fallbackErr
			}
			return nil, fmt.Errorf("%w: %v", ErrRecommendationUnavailable, fallbackErr)
		}
		return items, nil
	}

	if len(scores) < len(matches) {
		zap.L().Warn("oracle returned short score vector, discarding",
			zap.Int("scores", len(scores)),
			zap.Int("catalog_rows", len(matches)),
		)
		return []domain.RecommendationItem{}, nil
	}

	items := make([]domain.RecommendationItem, len(matches))
	for i, m := range matches {
		items[i] = domain.RecommendationItem{
			Match:           m,
			Score:           scores[i],
			SuggestedAction: action,
		}
	}

	// Stable sort keeps catalog insertion order for equal scores.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return truncate(items), nil
}

func buildItems(matches []domain.Match, action string) []domain.RecommendationItem {
	items := make([]domain.RecommendationItem, len(matches))
	for i, m := range matches {
		items[i] = domain.RecommendationItem{
			Match:           m,
			Score:           0.0,
			SuggestedAction: action,
		}
	}

	return truncate(items)
}

func truncate(items []domain.RecommendationItem) []domain.RecommendationItem {
	if len(items) > MaxRecommendations {
		return items[:MaxRecommendations]
	}
	return items
}
