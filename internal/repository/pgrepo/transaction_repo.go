package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create вставляет запись платежа. Повторная вставка с тем же transaction_id
// упирается в уникальный индекс и возвращает domain.ErrDuplicateKey.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `
		INSERT INTO transactions (user_id, transaction_id, amount, currency, email, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, user_id, transaction_id, amount, currency, email, status`,
		args.UserID, args.TransactionID, args.Amount, args.Currency, args.Email, args.Status,
	)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction with id `%s`", args.TransactionID)
	}
	return transaction, nil
}

func (t *TransactionRepository) FindByTransactionID(
	ctx context.Context,
	transactionID string,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `
		SELECT id, created_at, user_id, transaction_id, amount, currency, email, status
		FROM transactions WHERE transaction_id = $1 LIMIT 1`,
		transactionID,
	)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by id `%s`", transactionID)
	}
	return transaction, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UserID,
		&transaction.TransactionID,
		&transaction.Amount,
		&transaction.Currency,
		&transaction.Email,
		&transaction.Status,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
