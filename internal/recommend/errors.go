package recommend

import "errors"

var (
	// ErrMalformedRecord marks a purchase record that does not name two
	// distinct participants. Extraction skips such records and continues.
	ErrMalformedRecord = errors.New("purchase record does not name two distinct teams")

	// ErrCatalogUnavailable means the match catalog failed to load at
	// startup. Permanent for the process lifetime.
	ErrCatalogUnavailable = errors.New("match catalog unavailable")

	// ErrMissingFavoriteTeam means the cold-start path was selected but
	// no favorite team was supplied. Terminal for the request.
	ErrMissingFavoriteTeam = errors.New("favorite team is required for users without purchase history")

	// ErrRecommendationUnavailable means no resolution path could produce
	// a result. Callers may retry once dependencies recover.
	ErrRecommendationUnavailable = errors.New("no recommendation path available")
)
