package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddPurchaseRequest struct {
	MatchID  uint   `json:"id_match"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Venue    string `json:"stadion"`
	Quantity int    `json:"quantity"`
}

func (req *AddPurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MatchID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.HomeTeam, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.AwayTeam, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Venue, validation.Length(0, 100)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
