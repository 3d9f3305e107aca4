package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrNoActiveRate возвращается резолвером ставок когда в таблице нет ни одного
	// активного уровня. Комиссия в этом случае не создается, продажа не блокируется.
	ErrNoActiveRate = errors.New("no active commission rate")
)

// CouponRejectedError - отказ валидации купона. Message предназначен покупателю
// и отдается наружу как есть.
type CouponRejectedError struct {
	Message string
}

func NewCouponRejectedError(message string) error {
	return &CouponRejectedError{Message: message}
}

func (e *CouponRejectedError) Error() string {
	return e.Message
}

// NewMinAmountError формирует отказ по минимальной сумме заказа.
func NewMinAmountError(minAmount decimal.Decimal) error {
	return &CouponRejectedError{Message: fmt.Sprintf("Minimum order amount is ₹%s", minAmount.String())}
}

// DuplicateSettlementError сигнализирует что платеж с данным внешним идентификатором
// уже проведен. Держит ранее созданную запись для идемпотентного ответа.
type DuplicateSettlementError struct {
	Transaction *Transaction
}

func NewDuplicateSettlementError(transaction *Transaction) error {
	return &DuplicateSettlementError{Transaction: transaction}
}

func (e *DuplicateSettlementError) Error() string {
	return fmt.Sprintf(
		"transaction %s already settled for user with id %d",
		e.Transaction.TransactionID,
		e.Transaction.UserID,
	)
}
