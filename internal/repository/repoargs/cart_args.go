package repoargs

import "github.com/shopspring/decimal"

// PricedCartItem - строка корзины с данными каталога для выдачи наружу.
type PricedCartItem struct {
	CartID    int64           `json:"cart_id"`
	Qty       int32           `json:"qty"`
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}
