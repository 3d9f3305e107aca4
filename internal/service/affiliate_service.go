package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type AffiliateService struct {
	uow      uow.UOW
	userRepo UserRepository
}

func NewAffiliateService(u uow.UOW) (*AffiliateService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &AffiliateService{
		uow:      u,
		userRepo: userRepo,
	}, nil
}

func (s *AffiliateService) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

func (s *AffiliateService) GetAffiliates(ctx context.Context) ([]domain.User, error) {
	affiliates, err := s.userRepo.GetAffiliates(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliates, nil
}

// MakeAffiliate назначает юзеру реферальный код и включает флаг аффилиата.
// Код уникален: занятый код возвращается как domain.ErrDuplicateKey.
func (s *AffiliateService) MakeAffiliate(ctx context.Context, userID int64, affiliateCode string) error {
	if err := s.userRepo.MakeAffiliate(ctx, userID, affiliateCode); err != nil {
		return fmt.Errorf("making user %d an affiliate: %w", userID, err)
	}
	return nil
}

func (s *AffiliateService) RemoveAffiliate(ctx context.Context, userID int64) error {
	if err := s.userRepo.RemoveAffiliate(ctx, userID); err != nil {
		return fmt.Errorf("removing affiliate status of user %d: %w", userID, err)
	}
	return nil
}
