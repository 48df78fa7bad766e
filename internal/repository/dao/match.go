package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Match struct {
	ID uint `gorm:"primaryKey"`

	HomeTeam string `gorm:"not null"`
	AwayTeam string `gorm:"not null"`
	Venue    string
	City     string

	Date    string
	Kickoff string

	TicketsSold int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
}

type MatchDAO struct {
	db *gorm.DB
}

func NewMatchDAO(db *gorm.DB) *MatchDAO {
	return &MatchDAO{
		db: db,
	}
}

// FindAll returns every match ordered by primary key; that order is the
// catalog insertion order for the life of the process.
func (d *MatchDAO) FindAll(ctx context.Context) ([]Match, error) {
	var matches []Match
	result := d.db.WithContext(ctx).Order("id ASC").Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (d *MatchDAO) Insert(ctx context.Context, match Match) (Match, error) {
	result := d.db.WithContext(ctx).Create(&match)
	if result.Error != nil {
		return Match{}, result.Error
	}

	return match, nil
}
