package recommend

import (
	"fmt"
	"strings"

	"github.com/tiketbola/matchrec/internal/domain"
)

// Catalog is the in-memory, read-only view of the match catalog. It is
// built once at startup and safe for concurrent readers without locking.
//
// Team matching is exact string equality after trimming whitespace on
// both sides, case-sensitive. Case folding is deliberately not applied:
// club names are identifiers here, and folding would silently merge
// distinct ones.
type Catalog struct {
	matches []domain.Match
	loadErr error
}

// NewCatalog builds a catalog over the given matches, preserving their
// order as the canonical catalog insertion order. Matches with identical
// home and away teams, or negative ticket counts, are dropped at the door.
func NewCatalog(matches []domain.Match) *Catalog {
	kept := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		m.HomeTeam = strings.TrimSpace(m.HomeTeam)
		m.AwayTeam = strings.TrimSpace(m.AwayTeam)
		if m.HomeTeam == "" || m.AwayTeam == "" || m.HomeTeam == m.AwayTeam || m.TicketsSold < 0 {
			continue
		}
		kept = append(kept, m)
	}

	return &Catalog{matches: kept}
}

// NewUnavailableCatalog records a startup load failure. Every query on
// the returned catalog fails with ErrCatalogUnavailable for the rest of
// the process lifetime.
func NewUnavailableCatalog(cause error) *Catalog {
	return &Catalog{loadErr: fmt.Errorf("%w: %v", ErrCatalogUnavailable, cause)}
}

func (c *Catalog) Err() error {
	return c.loadErr
}

func (c *Catalog) Len() int {
	return len(c.matches)
}

// All returns every match in catalog insertion order. The returned slice
// is a view; callers must not mutate it.
func (c *Catalog) All() ([]domain.Match, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return c.matches, nil
}

// FindByTeam returns, in catalog order, the matches where the given team
// plays home or away.
func (c *Catalog) FindByTeam(team string) ([]domain.Match, error) {
	set := make(TeamSet, 1)
	set.Add(strings.TrimSpace(team))
	return c.FindByAnyTeam(set)
}

// FindByAnyTeam returns, in catalog order, the matches where either
// participant is a member of the given set. A match qualifying through
// both participants appears once.
func (c *Catalog) FindByAnyTeam(teams TeamSet) ([]domain.Match, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}

	found := make([]domain.Match, 0)
	for _, m := range c.matches {
		if teams.Has(m.HomeTeam) || teams.Has(m.AwayTeam) {
			found = append(found, m)
		}
	}

	return found, nil
}
