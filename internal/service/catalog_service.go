package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

// CatalogService - простой CRUD каталога. Инвариантов кроме существования
// записей тут нет, цены из каталога читают чекаут и превью комиссии.
type CatalogService struct {
	uow         uow.UOW
	productRepo ProductRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	productRepo, productRepoErr :=
		uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	return &CatalogService{
		uow:         u,
		productRepo: productRepo,
	}, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return product, nil
}

func (s *CatalogService) GetAll(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return products, nil
}

func (s *CatalogService) Create(ctx context.Context, args repoargs.ProductSave) (*domain.Product, error) {
	product, err := s.productRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id int64, args repoargs.ProductSave) error {
	if err := s.productRepo.Update(ctx, id, args); err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}
