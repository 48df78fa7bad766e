package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// RecommendationRequest carries the user identity and their stated
// favorite team. favorite_team may be empty for users with purchase
// history; the engine decides whether it is required.
type RecommendationRequest struct {
	UserID       uint   `json:"user_id"`
	FavoriteTeam string `json:"favorite_team"`
}

func (req *RecommendationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.FavoriteTeam, validation.Length(0, 50)),
	)
}
