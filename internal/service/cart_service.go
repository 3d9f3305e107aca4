package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type CartService struct {
	uow      uow.UOW
	cartRepo CartRepository
}

func NewCartService(u uow.UOW) (*CartService, error) {
	cartRepo, cartRepoErr := uow.GetRepositoryAs[CartRepository](u, uow.RepositoryName(repoargs.CartRepoName))
	if cartRepoErr != nil {
		return nil, cartRepoErr
	}
	return &CartService{
		uow:      u,
		cartRepo: cartRepo,
	}, nil
}

// AddItem добавляет товар в корзину юзера. Повторное добавление того же товара
// увеличивает количество, отдельной строки не появляется.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64, qty int32) error {
	if err := s.cartRepo.AddItem(ctx, userID, productID, qty); err != nil {
		return fmt.Errorf("adding item to cart: %w", err)
	}
	return nil
}

func (s *CartService) GetByUserID(ctx context.Context, userID int64) ([]repoargs.PricedCartItem, error) {
	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return items, nil
}

func (s *CartService) UpdateQty(ctx context.Context, cartID int64, qty int32) error {
	if err := s.cartRepo.UpdateQty(ctx, cartID, qty); err != nil {
		return fmt.Errorf("updating cart qty: %w", err)
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID int64) error {
	if err := s.cartRepo.RemoveItem(ctx, cartID); err != nil {
		return fmt.Errorf("removing cart item: %w", err)
	}
	return nil
}
