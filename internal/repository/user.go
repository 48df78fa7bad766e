package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindWithPurchases(ctx context.Context, id uint) (dao.User, error)
	InsertPurchase(ctx context.Context, record dao.PurchaseRecord) (dao.PurchaseRecord, error)
	FindPurchasesByUserID(ctx context.Context, userID uint) ([]dao.PurchaseRecord, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:        user.Email,
		Password:     user.Password,
		Name:         user.Name,
		FavoriteTeam: user.FavoriteTeam,
	})
	if err != nil {
		if errors.Is(err, dao.ErrUserEmailExists) {
			return domain.User{}, ErrUserEmailExists
		}

		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dao.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindWithPurchases returns the read-only user projection the
// recommendation engine consumes. Absence is reported through the bool,
// not an error, so callers can branch on it explicitly.
func (r *UserRepository) FindWithPurchases(ctx context.Context, id uint) (domain.User, bool, error) {
	found, err := r.dao.FindWithPurchases(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrUserNotFound) {
			return domain.User{}, false, nil
		}

		return domain.User{}, false, fmt.Errorf("r.dao.FindWithPurchases -> %w", err)
	}

	user := r.daoToDomain(found)
	user.PurchaseHistory = make([]domain.PurchaseRecord, len(found.Purchases))
	for i, p := range found.Purchases {
		user.PurchaseHistory[i] = r.purchaseDaoToDomain(p)
	}

	return user, true, nil
}

func (r *UserRepository) AddPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	created, err := r.dao.InsertPurchase(ctx, dao.PurchaseRecord{
		UserID:      record.UserID,
		MatchID:     record.MatchID,
		HomeTeam:    record.HomeTeam,
		AwayTeam:    record.AwayTeam,
		Venue:       record.Venue,
		Quantity:    record.Quantity,
		PurchasedAt: record.PurchasedAt,
	})
	if err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("r.dao.InsertPurchase -> %w", err)
	}

	return r.purchaseDaoToDomain(created), nil
}

func (r *UserRepository) FindPurchases(ctx context.Context, userID uint) ([]domain.PurchaseRecord, error) {
	found, err := r.dao.FindPurchasesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPurchasesByUserID -> %w", err)
	}

	records := make([]domain.PurchaseRecord, len(found))
	for i, p := range found {
		records[i] = r.purchaseDaoToDomain(p)
	}

	return records, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:           u.ID,
		Email:        u.Email,
		Password:     u.Password,
		Name:         u.Name,
		FavoriteTeam: u.FavoriteTeam,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) purchaseDaoToDomain(p dao.PurchaseRecord) domain.PurchaseRecord {
	return domain.PurchaseRecord{
		ID:          p.ID,
		UserID:      p.UserID,
		MatchID:     p.MatchID,
		HomeTeam:    p.HomeTeam,
		AwayTeam:    p.AwayTeam,
		Venue:       p.Venue,
		Quantity:    p.Quantity,
		PurchasedAt: p.PurchasedAt,
	}
}
