package service

import (
	"context"
	"fmt"

	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindPurchases(ctx context.Context, userID uint) ([]domain.PurchaseRecord, error)
	AddPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetPurchases(ctx context.Context, userID uint) ([]domain.PurchaseRecord, error) {
	records, err := s.repo.FindPurchases(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPurchases -> %w", err)
	}

	return records, nil
}

func (s *UserService) AddPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	if _, err := s.repo.FindByID(ctx, record.UserID); err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.AddPurchase(ctx, record)
	if err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("s.repo.AddPurchase -> %w", err)
	}

	return created, nil
}
