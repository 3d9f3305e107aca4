package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service"
)

type SettlementServicer interface {
	CreateCheckoutSession(ctx context.Context, amount decimal.Decimal) (string, error)
	Settle(ctx context.Context, args service.SettleArgs) (*domain.Transaction, error)
	Details(ctx context.Context, transactionID string) (*service.TransactionDetails, error)
}

type CommissionServicer interface {
	ProductCommission(ctx context.Context, productID int64) (*service.ProductCommission, error)
	Rates(ctx context.Context) ([]domain.CommissionRate, error)
	CreateRate(ctx context.Context, args repoargs.CommissionRateSave) (*domain.CommissionRate, error)
	UpdateRate(ctx context.Context, id int64, args repoargs.CommissionRateSave) error
	DeleteRate(ctx context.Context, id int64) error
	Commissions(ctx context.Context) ([]repoargs.CommissionWithAffiliate, error)
	CommissionsByAffiliate(ctx context.Context, affiliateUserID int64) ([]domain.AffiliateCommission, error)
	UpdateCommissionStatus(ctx context.Context, id int64, status domain.CommissionStatusType) error
}

type CouponServicer interface {
	Validate(ctx context.Context, code string, amount decimal.Decimal, userID int64) (*service.CouponDiscount, error)
	GetAll(ctx context.Context) ([]domain.Coupon, error)
	Create(ctx context.Context, args repoargs.CouponSave) (*domain.Coupon, error)
	Update(ctx context.Context, id int64, args repoargs.CouponSave) error
	ToggleActive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type CartServicer interface {
	AddItem(ctx context.Context, userID, productID int64, qty int32) error
	GetByUserID(ctx context.Context, userID int64) ([]repoargs.PricedCartItem, error)
	UpdateQty(ctx context.Context, cartID int64, qty int32) error
	RemoveItem(ctx context.Context, cartID int64) error
}

type AffiliateServicer interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	GetAffiliates(ctx context.Context) ([]domain.User, error)
	MakeAffiliate(ctx context.Context, userID int64, affiliateCode string) error
	RemoveAffiliate(ctx context.Context, userID int64) error
}

type CatalogServicer interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, args repoargs.ProductSave) (*domain.Product, error)
	Update(ctx context.Context, id int64, args repoargs.ProductSave) error
	Delete(ctx context.Context, id int64) error
}
