package domain

import "time"

type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Name         string    `json:"name"`
	FavoriteTeam string    `json:"favorite_team"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// PurchaseHistory is ordered by purchase time, oldest first.
	// Empty for users who never bought a ticket.
	PurchaseHistory []PurchaseRecord `json:"purchase_history,omitempty"`
}

// PurchaseRecord is one past ticket purchase. Append-only; the
// recommendation engine only ever reads these.
type PurchaseRecord struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	MatchID     uint      `json:"id_match"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	Venue       string    `json:"stadion"`
	Quantity    int       `json:"quantity"`
	PurchasedAt time.Time `json:"tanggal_pembelian"`
}
