package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service/mocks"
	"github.com/fsdevblog/groph-shop/internal/transport/gateway"

	"github.com/fsdevblog/groph-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-shop/pkg/uow/mocks"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockGateway         *mocks.MockGatewayClient
	mockTransactionRepo *mocks.MockTransactionRepository
	mockOrderItemRepo   *mocks.MockOrderItemRepository
	mockCartRepo        *mocks.MockCartRepository
	attributionCh       chan AttributeArgs
	settlementService   *SettlementService
}

func TestSettlementServiceSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}

func (s *SettlementServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockGateway = mocks.NewMockGatewayClient(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockOrderItemRepo = mocks.NewMockOrderItemRepository(s.mockCtrl)
	s.mockCartRepo = mocks.NewMockCartRepository(s.mockCtrl)
	s.attributionCh = make(chan AttributeArgs, 1)

	// Моки получения репозиториев из uow. Выполняются в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderItemRepoName)).
		Return(s.mockOrderItemRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CartRepoName)).
		Return(s.mockCartRepo, nil).AnyTimes()

	// Моки tx-скоупных репозиториев внутри uow.Do.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderItemRepoName)).
		Return(s.mockOrderItemRepo, nil).AnyTimes()

	settlementService, servErr := NewSettlementService(s.mockUOW, s.mockGateway, s.attributionCh, newTestLogger())
	s.Require().NoError(servErr)
	s.settlementService = settlementService
}

func (s *SettlementServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo прокидывает коллбек uow.Do в mockTX, имитируя транзакцию.
func (s *SettlementServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *SettlementServiceTestSuite) TestSettle() {
	payment := &gateway.Payment{
		TransactionID: "pi_100",
		Amount:        decimal.NewFromInt(500),
		Currency:      "inr",
		Email:         "buyer@example.com",
		Status:        gateway.PaymentStatusPaid,
	}
	transaction := &domain.Transaction{
		ID:            1,
		UserID:        2,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
	}

	s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), "cs_test_1").Return(payment, nil)
	s.expectDo()
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), repoargs.TransactionCreate{
			UserID:        2,
			TransactionID: "pi_100",
			Amount:        payment.Amount,
			Currency:      "inr",
			Email:         "buyer@example.com",
			Status:        "paid",
		}).
		Return(transaction, nil)
	s.mockOrderItemRepo.EXPECT().CopyFromCart(gomock.Any(), "pi_100", int64(2)).Return(int64(3), nil)
	s.mockCartRepo.EXPECT().ClearByUserID(gomock.Any(), int64(2)).Return(nil)

	got, err := s.settlementService.Settle(context.Background(), SettleArgs{
		SessionID:    "cs_test_1",
		UserID:       2,
		ReferralCode: "JOHN10",
	})
	s.Require().NoError(err)
	s.Equal("pi_100", got.TransactionID)

	// Задача атрибуции поставлена в очередь.
	select {
	case task := <-s.attributionCh:
		s.Equal("pi_100", task.OrderID)
		s.Equal("JOHN10", task.ReferralCode)
		s.Equal(int64(2), task.ReferredUserID)
	default:
		s.Fail("attribution task was not enqueued")
	}
}

// TestSettle_GatewayFailure Сбой шлюза до записи в БД: транзакция не создается,
// корзина не трогается.
func (s *SettlementServiceTestSuite) TestSettle_GatewayFailure() {
	s.mockGateway.EXPECT().
		RetrieveSession(gomock.Any(), "cs_test_2").
		Return(nil, &gateway.StatusCodeError{Code: 404})

	_, err := s.settlementService.Settle(context.Background(), SettleArgs{
		SessionID: "cs_test_2",
		UserID:    2,
	})
	var statusErr *gateway.StatusCodeError
	s.ErrorAs(err, &statusErr)
}

// TestSettle_Duplicate Ретрай клиента с той же сессией возвращает ранее
// созданную запись без ошибки.
func (s *SettlementServiceTestSuite) TestSettle_Duplicate() {
	payment := &gateway.Payment{
		TransactionID: "pi_100",
		Amount:        decimal.NewFromInt(500),
		Status:        gateway.PaymentStatusPaid,
	}
	existing := &domain.Transaction{ID: 1, UserID: 2, TransactionID: "pi_100"}

	s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), "cs_test_1").Return(payment, nil)
	s.expectDo()
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	s.mockTransactionRepo.EXPECT().
		FindByTransactionID(gomock.Any(), "pi_100").
		Return(existing, nil)
	// Корзина при дубликате не чистится и атрибуция не ставится.

	got, err := s.settlementService.Settle(context.Background(), SettleArgs{
		SessionID:    "cs_test_1",
		UserID:       2,
		ReferralCode: "JOHN10",
	})
	s.Require().NoError(err)
	s.Equal(existing, got)
	s.Empty(s.attributionCh)
}

// TestSettle_CartClearFailure Сбой очистки корзины не валит уже проведенный
// платеж.
func (s *SettlementServiceTestSuite) TestSettle_CartClearFailure() {
	payment := &gateway.Payment{
		TransactionID: "pi_101",
		Amount:        decimal.NewFromInt(100),
		Status:        gateway.PaymentStatusPaid,
	}
	transaction := &domain.Transaction{ID: 2, UserID: 3, TransactionID: "pi_101"}

	s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), "cs_test_3").Return(payment, nil)
	s.expectDo()
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(transaction, nil)
	s.mockOrderItemRepo.EXPECT().CopyFromCart(gomock.Any(), "pi_101", int64(3)).Return(int64(0), nil)
	s.mockCartRepo.EXPECT().ClearByUserID(gomock.Any(), int64(3)).Return(errors.New("boom"))

	got, err := s.settlementService.Settle(context.Background(), SettleArgs{
		SessionID: "cs_test_3",
		UserID:    3,
	})
	s.Require().NoError(err)
	s.Equal(transaction, got)
}

// TestSettle_CopyFailureRollsBack Сбой копирования корзины откатывает и вставку
// транзакции (обе операции живут в одной транзакции БД).
func (s *SettlementServiceTestSuite) TestSettle_CopyFailureRollsBack() {
	payment := &gateway.Payment{
		TransactionID: "pi_102",
		Amount:        decimal.NewFromInt(100),
		Status:        gateway.PaymentStatusPaid,
	}

	s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), "cs_test_4").Return(payment, nil)
	s.expectDo()
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 3}, nil)
	s.mockOrderItemRepo.EXPECT().
		CopyFromCart(gomock.Any(), "pi_102", int64(4)).
		Return(int64(0), domain.ErrUnknown)

	_, err := s.settlementService.Settle(context.Background(), SettleArgs{
		SessionID: "cs_test_4",
		UserID:    4,
	})
	s.ErrorIs(err, domain.ErrUnknown)
}

// TestSettle_AttributionQueueFull Переполненная очередь атрибуции не
// блокирует и не валит проведение платежа: задача просто роняется с логом.
func (s *SettlementServiceTestSuite) TestSettle_AttributionQueueFull() {
	fullCh := make(chan AttributeArgs) // без буфера и без читателя
	settlementService, servErr := NewSettlementService(s.mockUOW, s.mockGateway, fullCh, newTestLogger())
	s.Require().NoError(servErr)

	payment := &gateway.Payment{
		TransactionID: "pi_103",
		Amount:        decimal.NewFromInt(300),
		Status:        gateway.PaymentStatusPaid,
	}
	transaction := &domain.Transaction{ID: 4, UserID: 5, TransactionID: "pi_103"}

	s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), "cs_test_5").Return(payment, nil)
	s.expectDo()
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(transaction, nil)
	s.mockOrderItemRepo.EXPECT().CopyFromCart(gomock.Any(), "pi_103", int64(5)).Return(int64(1), nil)
	s.mockCartRepo.EXPECT().ClearByUserID(gomock.Any(), int64(5)).Return(nil)

	got, err := settlementService.Settle(context.Background(), SettleArgs{
		SessionID:    "cs_test_5",
		UserID:       5,
		ReferralCode: "JOHN10",
	})
	s.Require().NoError(err)
	s.Equal(transaction, got)
}

func (s *SettlementServiceTestSuite) TestCreateCheckoutSession() {
	amount := decimal.NewFromFloat(499.99)
	s.mockGateway.EXPECT().
		CreateSession(gomock.Any(), amount).
		Return(&gateway.CheckoutSession{
			ID:  "cs_test_200",
			URL: "https://checkout.gateway.example/pay/cs_test_200",
		}, nil)

	sessionURL, err := s.settlementService.CreateCheckoutSession(context.Background(), amount)
	s.Require().NoError(err)
	s.Equal("https://checkout.gateway.example/pay/cs_test_200", sessionURL)
}

func (s *SettlementServiceTestSuite) TestCreateCheckoutSession_GatewayFailure() {
	s.mockGateway.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(nil, &gateway.StatusCodeError{Code: 401})

	_, err := s.settlementService.CreateCheckoutSession(context.Background(), decimal.NewFromInt(100))

	var statusErr *gateway.StatusCodeError
	s.ErrorAs(err, &statusErr)
}

func (s *SettlementServiceTestSuite) TestDetails_NotFound() {
	s.mockTransactionRepo.EXPECT().
		FindByTransactionID(gomock.Any(), "pi_missing").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.settlementService.Details(context.Background(), "pi_missing")
	s.ErrorIs(err, domain.ErrRecordNotFound)
}
