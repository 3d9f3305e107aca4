package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponSave struct {
	Code           string
	DiscountAmount decimal.Decimal
	MinAmount      decimal.Decimal
	ExpiryDate     *time.Time
	IsActive       bool
}
