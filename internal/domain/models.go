package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Username      string
	Email         string
	Country       string
	IsAffiliate   bool
	AffiliateCode string
}

type Product struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Title                string
	Price                decimal.Decimal
	Description          string
	Image                string
	CommissionPercentage *decimal.Decimal
}

type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Qty       int32
}

// Transaction фиксирует завершенный платеж. TransactionID - внешний идентификатор
// платежа из шлюза, уникален на уровне БД. После вставки запись не изменяется.
type Transaction struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Email         string
	Status        string
}

// OrderItem - снимок строки корзины на момент проведения платежа.
// OrderID равен Transaction.TransactionID.
type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID int64
	Quantity  int32
}

type CommissionRate struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	RateName             string
	CommissionPercentage decimal.Decimal
	MinSalesAmount       decimal.Decimal
	IsActive             bool
	CookieDuration       int32
}

type AffiliateCommission struct {
	ID               int64
	CreatedAt        time.Time
	AffiliateUserID  int64
	OrderID          string
	OrderAmount      decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	Status           CommissionStatusType
	ReferredUserID   int64
	ReferralCode     string
}

type Coupon struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Code           string
	DiscountAmount decimal.Decimal
	MinAmount      decimal.Decimal
	ExpiryDate     *time.Time
	IsActive       bool
}

type CouponUsage struct {
	ID       int64
	UserID   int64
	CouponID int64
	UsedAt   time.Time
}
