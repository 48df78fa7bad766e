package recommend

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tiketbola/matchrec/internal/domain"
)

// TeamSet is a set of trimmed team names, scoped to one resolution call.
type TeamSet map[string]struct{}

func (s TeamSet) Add(team string) {
	s[team] = struct{}{}
}

func (s TeamSet) Has(team string) bool {
	_, ok := s[team]
	return ok
}

// Names returns the members in unspecified order. Callers needing
// determinism sort the result.
func (s TeamSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// RelevantTeams derives the set of distinct team names appearing as home
// or away participant in the given purchase history. Records that do not
// name two distinct participants are skipped and counted, never fatal;
// the skipped count is returned so callers can log it.
func RelevantTeams(history []domain.PurchaseRecord) (TeamSet, int) {
	teams := make(TeamSet, len(history)*2)
	skipped := 0

	for _, record := range history {
		home := strings.TrimSpace(record.HomeTeam)
		away := strings.TrimSpace(record.AwayTeam)

		if home == "" || away == "" || home == away {
			skipped++
			zap.L().Warn("skipping malformed purchase record",
				zap.Uint("record_id", record.ID),
				zap.Uint("match_id", record.MatchID),
				zap.Error(ErrMalformedRecord),
			)
			continue
		}

		teams.Add(home)
		teams.Add(away)
	}

	return teams, skipped
}
