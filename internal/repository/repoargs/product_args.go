package repoargs

import "github.com/shopspring/decimal"

type ProductSave struct {
	Title                string
	Price                decimal.Decimal
	Description          string
	Image                string
	CommissionPercentage *decimal.Decimal
}
