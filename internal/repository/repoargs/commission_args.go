package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
)

type AffiliateCommissionCreate struct {
	AffiliateUserID  int64
	OrderID          string
	OrderAmount      decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	ReferredUserID   int64
	ReferralCode     string
}

type CommissionRateSave struct {
	RateName             string
	CommissionPercentage decimal.Decimal
	MinSalesAmount       decimal.Decimal
	IsActive             bool
	CookieDuration       int32
}

// CommissionWithAffiliate - запись комиссии с данными аффилиата для админской
// выборки.
type CommissionWithAffiliate struct {
	domain.AffiliateCommission
	AffiliateUsername string
	AffiliateEmail    string
}
