package domain

// Match is one row of the match catalog. Immutable after the catalog is
// loaded at startup. HomeTeam and AwayTeam are always distinct and
// TicketsSold is never negative; the loaders enforce both.
type Match struct {
	ID          uint   `json:"id_match"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Venue       string `json:"stadion"`
	City        string `json:"lokasi"`
	Date        string `json:"tanggal"`
	Kickoff     string `json:"jam"`
	TicketsSold int    `json:"tiket_terjual"`
}
