package repository

import (
	"context"
	"fmt"

	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/repository/dao"
)

type MatchDAO interface {
	FindAll(ctx context.Context) ([]dao.Match, error)
	Insert(ctx context.Context, match dao.Match) (dao.Match, error)
}

// MatchRepository is the database-backed catalog source.
type MatchRepository struct {
	dao MatchDAO
}

func NewMatchRepository(dao MatchDAO) *MatchRepository {
	return &MatchRepository{
		dao: dao,
	}
}

// LoadAll reads the whole matches table in insertion order. Called once
// at startup; the catalog never re-reads it.
func (r *MatchRepository) LoadAll(ctx context.Context) ([]domain.Match, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	matches := make([]domain.Match, len(found))
	for i, m := range found {
		matches[i] = domain.Match{
			ID:          m.ID,
			HomeTeam:    m.HomeTeam,
			AwayTeam:    m.AwayTeam,
			Venue:       m.Venue,
			City:        m.City,
			Date:        m.Date,
			Kickoff:     m.Kickoff,
			TicketsSold: m.TicketsSold,
		}
	}

	return matches, nil
}
