package response

import "github.com/tiketbola/matchrec/internal/domain"

// RecommendationResponse mirrors the legacy recommender wire shape:
// a status string plus the ranked item list.
type RecommendationResponse struct {
	Status          string                      `json:"status"`
	Recommendations []domain.RecommendationItem `json:"recommendations"`
}
