package repoargs

import "github.com/shopspring/decimal"

type TransactionCreate struct {
	UserID        int64
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Email         string
	Status        string
}

// PricedOrderItem - строка заказа, обогащенная данными каталога для витрины
// деталей транзакции.
type PricedOrderItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
}
