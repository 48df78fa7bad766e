package domain

// Suggested-action labels attached to recommendation items, by strategy.
const (
	ActionBuyAgain  = "Consider buying tickets"
	ActionNewForYou = "New match for you!"
)

// RecommendationItem is built per request and never persisted.
// Score is 0.0 on unscored paths.
type RecommendationItem struct {
	Match
	Score           float64 `json:"score"`
	SuggestedAction string  `json:"suggested_action"`
}
