package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/transport/gateway"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

type OrderItemRepository interface {
	CopyFromCart(ctx context.Context, orderID string, userID int64) (int64, error)
	GetPricedItems(ctx context.Context, orderID string) ([]repoargs.PricedOrderItem, error)
}

type CartRepository interface {
	AddItem(ctx context.Context, userID, productID int64, qty int32) error
	GetByUserID(ctx context.Context, userID int64) ([]repoargs.PricedCartItem, error)
	UpdateQty(ctx context.Context, cartID int64, qty int32) error
	RemoveItem(ctx context.Context, cartID int64) error
	ClearByUserID(ctx context.Context, userID int64) error
}

type CommissionRateRepository interface {
	FindBestForAmount(ctx context.Context, amount decimal.Decimal) (*domain.CommissionRate, error)
	FindEntryLevel(ctx context.Context) (*domain.CommissionRate, error)
	GetAll(ctx context.Context) ([]domain.CommissionRate, error)
	Create(ctx context.Context, args repoargs.CommissionRateSave) (*domain.CommissionRate, error)
	Update(ctx context.Context, id int64, args repoargs.CommissionRateSave) error
	Delete(ctx context.Context, id int64) error
}

type AffiliateCommissionRepository interface {
	Create(ctx context.Context, args repoargs.AffiliateCommissionCreate) (*domain.AffiliateCommission, error)
	GetAll(ctx context.Context) ([]repoargs.CommissionWithAffiliate, error)
	GetByAffiliate(ctx context.Context, affiliateUserID int64) ([]domain.AffiliateCommission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatusType) error
}

type CouponRepository interface {
	FindValidByCode(ctx context.Context, code string) (*domain.Coupon, error)
	HasUsage(ctx context.Context, userID, couponID int64) (bool, error)
	RecordUsage(ctx context.Context, userID, couponID int64) error
	GetAll(ctx context.Context) ([]domain.Coupon, error)
	Create(ctx context.Context, args repoargs.CouponSave) (*domain.Coupon, error)
	Update(ctx context.Context, id int64, args repoargs.CouponSave) error
	ToggleActive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	FindAffiliateByCode(ctx context.Context, referralCode string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetAffiliates(ctx context.Context) ([]domain.User, error)
	MakeAffiliate(ctx context.Context, userID int64, affiliateCode string) error
	RemoveAffiliate(ctx context.Context, userID int64) error
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, args repoargs.ProductSave) (*domain.Product, error)
	Update(ctx context.Context, id int64, args repoargs.ProductSave) error
	Delete(ctx context.Context, id int64) error
}

// GatewayClient - платежный шлюз. Создает чекаут-сессию и возвращает
// финализированный платеж по ее идентификатору.
type GatewayClient interface {
	CreateSession(ctx context.Context, amount decimal.Decimal) (*gateway.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*gateway.Payment, error)
}
