package recommend

import "context"

// Feature is the input handed to the scoring oracle. Exactly one of the
// two shapes is populated per request: FavoriteTeam for cold-start
// scoring, RelevantTeams for history scoring.
type Feature struct {
	UserID        uint     `json:"user_id"`
	FavoriteTeam  string   `json:"favorite_team,omitempty"`
	RelevantTeams []string `json:"relevant_teams,omitempty"`
}

// ScoringOracle is the optional trained model ranking catalog rows.
// Score returns one score per catalog row, in catalog order.
//
// Availability is a process-lifetime fact: Available must be cheap, and
// once an implementation reports false it must keep reporting false.
// A nil oracle (degraded deployment) is a valid, permanent configuration.
type ScoringOracle interface {
	Available() bool
	Score(ctx context.Context, feature Feature) ([]float64, error)
}
