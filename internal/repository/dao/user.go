package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Name         string `gorm:"not null"`
	FavoriteTeam string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Purchases []PurchaseRecord `gorm:"foreignKey:UserID"`
}

type PurchaseRecord struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	MatchID  uint   `gorm:"not null"`
	HomeTeam string `gorm:"not null"`
	AwayTeam string `gorm:"not null"`
	Venue    string

	Quantity    int       `gorm:"not null;default:1"`
	PurchasedAt time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_users_email"`) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User
	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// FindWithPurchases loads a user and their full purchase history, oldest
// purchase first.
func (d *UserDAO) FindWithPurchases(ctx context.Context, id uint) (User, error) {
	var user User
	result := d.db.WithContext(ctx).
		Preload("Purchases", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("purchase_records.purchased_at ASC, purchase_records.id ASC")
		}).
		First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) InsertPurchase(ctx context.Context, record PurchaseRecord) (PurchaseRecord, error) {
	result := d.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return PurchaseRecord{}, result.Error
	}

	return record, nil
}

func (d *UserDAO) FindPurchasesByUserID(ctx context.Context, userID uint) ([]PurchaseRecord, error) {
	var records []PurchaseRecord
	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at ASC, id ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}
