package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type SettlementService struct {
	uow             uow.UOW
	gateway         GatewayClient
	transactionRepo TransactionRepository
	orderItemRepo   OrderItemRepository
	cartRepo        CartRepository
	attributionCh   chan<- AttributeArgs
	l               *logrus.Entry
}

func NewSettlementService(
	u uow.UOW,
	gatewayClient GatewayClient,
	attributionCh chan<- AttributeArgs,
	l *logrus.Logger,
) (*SettlementService, error) {
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	orderItemRepo, orderItemRepoErr :=
		uow.GetRepositoryAs[OrderItemRepository](u, uow.RepositoryName(repoargs.OrderItemRepoName))
	if orderItemRepoErr != nil {
		return nil, orderItemRepoErr
	}
	cartRepo, cartRepoErr := uow.GetRepositoryAs[CartRepository](u, uow.RepositoryName(repoargs.CartRepoName))
	if cartRepoErr != nil {
		return nil, cartRepoErr
	}
	return &SettlementService{
		uow:             u,
		gateway:         gatewayClient,
		transactionRepo: transactionRepo,
		orderItemRepo:   orderItemRepo,
		cartRepo:        cartRepo,
		attributionCh:   attributionCh,
		l:               l.WithField("component", "settlement_service"),
	}, nil
}

// CreateCheckoutSession открывает у шлюза сессию оплаты на заданную сумму и
// возвращает URL hosted-формы, куда фронт редиректит покупателя.
func (s *SettlementService) CreateCheckoutSession(ctx context.Context, amount decimal.Decimal) (string, error) {
	session, sessionErr := s.gateway.CreateSession(ctx, amount)
	if sessionErr != nil {
		return "", fmt.Errorf("creating checkout session: %w", sessionErr)
	}
	return session.URL, nil
}

type SettleArgs struct {
	SessionID    string
	UserID       int64
	ReferralCode string
}

// Settle проводит завершенный платеж. Возвращает запись транзакции, ее
// TransactionID клиент использует для получения деталей заказа.
//
// Алгоритм работы:
//  1. Получаем финализированный платеж у шлюза. Сбой здесь валит всю операцию,
//     в БД ничего не пишется.
//  2. В одной транзакции БД: вставляем запись платежа (точка необратимости) и
//     копируем строки корзины в order_items. Пустая корзина допустима - заказ
//     просто остается без строк.
//  3. Дубликат по transaction_id (ретрай клиента) - не ошибка: откатываемся и
//     возвращаем ранее созданную запись, ответ идемпотентен.
//  4. После коммита ставим задачу атрибуции комиссии в очередь (fire-and-forget,
//     судьбу задачи смотрит воркер) и чистим корзину. Обе операции best-effort:
//     их сбой логируется и не влияет на ответ покупателю.
func (s *SettlementService) Settle(ctx context.Context, args SettleArgs) (*domain.Transaction, error) {
	payment, paymentErr := s.gateway.RetrieveSession(ctx, args.SessionID)
	if paymentErr != nil {
		return nil, fmt.Errorf("retrieving payment for session `%s`: %w", args.SessionID, paymentErr)
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		orderItemRepo, orderItemRepoErr :=
			uow.GetAs[OrderItemRepository](tx, uow.RepositoryName(repoargs.OrderItemRepoName))
		if orderItemRepoErr != nil {
			return orderItemRepoErr //nolint:wrapcheck
		}

		var createErr error
		transaction, createErr = transactionRepo.Create(c, repoargs.TransactionCreate{
			UserID:        args.UserID,
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			Email:         payment.Email,
			Status:        string(payment.Status),
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				existing, existingErr := s.transactionRepo.FindByTransactionID(c, payment.TransactionID)
				if existingErr != nil {
					return fmt.Errorf("looking up settled transaction: %w", existingErr)
				}
				return domain.NewDuplicateSettlementError(existing)
			}
			return createErr //nolint:wrapcheck
		}

		// Вставка транзакции должна случиться раньше копии корзины: иначе можно
		// потерять корзину без зафиксированной продажи.
		if _, copyErr := orderItemRepo.CopyFromCart(c, payment.TransactionID, args.UserID); copyErr != nil {
			return copyErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		var duplicateErr *domain.DuplicateSettlementError
		if errors.As(txErr, &duplicateErr) {
			s.l.WithField("transactionID", payment.TransactionID).Info("transaction already settled")
			return duplicateErr.Transaction, nil
		}
		return nil, fmt.Errorf("settling session `%s`: %w", args.SessionID, txErr)
	}

	s.enqueueAttribution(AttributeArgs{
		OrderID:        payment.TransactionID,
		OrderAmount:    payment.Amount,
		ReferredUserID: args.UserID,
		ReferralCode:   args.ReferralCode,
	})

	if clearErr := s.cartRepo.ClearByUserID(ctx, args.UserID); clearErr != nil {
		s.l.WithError(clearErr).WithField("userID", args.UserID).Error("clearing cart after settlement")
	}

	return transaction, nil
}

// enqueueAttribution отправляет задачу воркеру атрибуции не блокируя ответ.
// Переполненная очередь роняет задачу с логом: комиссия - advisory шаг.
func (s *SettlementService) enqueueAttribution(args AttributeArgs) {
	if args.ReferralCode == "" {
		return
	}
	select {
	case s.attributionCh <- args:
	default:
		s.l.WithField("orderID", args.OrderID).Error("attribution queue is full, task dropped")
	}
}

type TransactionDetails struct {
	Transaction *domain.Transaction
	Products    []repoargs.PricedOrderItem
}

// Details возвращает транзакцию и ее строки заказа, обогащенные каталогом.
// Неизвестный transaction_id - domain.ErrRecordNotFound.
func (s *SettlementService) Details(ctx context.Context, transactionID string) (*TransactionDetails, error) {
	transaction, transactionErr := s.transactionRepo.FindByTransactionID(ctx, transactionID)
	if transactionErr != nil {
		return nil, transactionErr //nolint:wrapcheck
	}

	items, itemsErr := s.orderItemRepo.GetPricedItems(ctx, transactionID)
	if itemsErr != nil {
		return nil, fmt.Errorf("getting details of transaction `%s`: %w", transactionID, itemsErr)
	}

	return &TransactionDetails{
		Transaction: transaction,
		Products:    items,
	}, nil
}
