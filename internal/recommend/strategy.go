package recommend

// Path is one of the four resolution strategies. Selection is a pure
// decision table over the request's user state; nothing persists between
// calls.
type Path int

const (
	// PathColdStartUnscored filters the catalog by the favorite team.
	PathColdStartUnscored Path = iota
	// PathColdStartScored ranks oracle scores for a favorite-team feature.
	PathColdStartScored
	// PathHistoryUnscored filters the catalog by the relevant-team set.
	PathHistoryUnscored
	// PathHistoryScored ranks oracle scores for a user-history feature.
	PathHistoryScored
)

func (p Path) String() string {
	switch p {
	case PathColdStartUnscored:
		return "cold-start/unscored"
	case PathColdStartScored:
		return "cold-start/scored"
	case PathHistoryUnscored:
		return "history/unscored"
	case PathHistoryScored:
		return "history/scored"
	default:
		return "unknown"
	}
}

// Decide picks the resolution path for one request.
//
//	hasHistory  oracle  path
//	false       false   cold-start, unscored
//	false       true    cold-start, scored
//	true        false   history, unscored
//	true        true    history, scored
func Decide(hasHistory, oracleAvailable bool) Path {
	switch {
	case hasHistory && oracleAvailable:
		return PathHistoryScored
	case hasHistory:
		return PathHistoryUnscored
	case oracleAvailable:
		return PathColdStartScored
	default:
		return PathColdStartUnscored
	}
}

// Scored reports whether the path invokes the scoring oracle.
func (p Path) Scored() bool {
	return p == PathColdStartScored || p == PathHistoryScored
}

// ColdStart reports whether the path requires a favorite team.
func (p Path) ColdStart() bool {
	return p == PathColdStartUnscored || p == PathColdStartScored
}
