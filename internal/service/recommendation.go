package service

import (
	"context"
	"fmt"

	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/recommend"
)

var (
	ErrMissingFavoriteTeam       = recommend.ErrMissingFavoriteTeam
	ErrCatalogUnavailable        = recommend.ErrCatalogUnavailable
	ErrRecommendationUnavailable = recommend.ErrRecommendationUnavailable
)

type Resolver interface {
	Resolve(ctx context.Context, userID uint, favoriteTeam string) ([]domain.RecommendationItem, error)
}

type RecommendationService struct {
	resolver Resolver
	catalog  *recommend.Catalog
}

func NewRecommendationService(resolver Resolver, catalog *recommend.Catalog) *RecommendationService {
	return &RecommendationService{
		resolver: resolver,
		catalog:  catalog,
	}
}

func (s *RecommendationService) Recommend(ctx context.Context, userID uint, favoriteTeam string) ([]domain.RecommendationItem, error) {
	items, err := s.resolver.Resolve(ctx, userID, favoriteTeam)
	if err != nil {
		return nil, fmt.Errorf("s.resolver.Resolve -> %w", err)
	}

	return items, nil
}

// ListMatches exposes the loaded catalog in insertion order.
func (s *RecommendationService) ListMatches(ctx context.Context) ([]domain.Match, error) {
	matches, err := s.catalog.All()
	if err != nil {
		return nil, err
	}

	return matches, nil
}
