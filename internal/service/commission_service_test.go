package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service/mocks"

	"github.com/fsdevblog/groph-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-shop/pkg/uow/mocks"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CommissionServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockRateRepo       *mocks.MockCommissionRateRepository
	mockCommissionRepo *mocks.MockAffiliateCommissionRepository
	mockUserRepo       *mocks.MockUserRepository
	mockProductRepo    *mocks.MockProductRepository
	commissionService  *CommissionService
}

func TestCommissionServiceSuite(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}

func (s *CommissionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockRateRepo = mocks.NewMockCommissionRateRepository(s.mockCtrl)
	s.mockCommissionRepo = mocks.NewMockAffiliateCommissionRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)

	// Моки получения репозиториев из uow. Выполняются в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CommissionRateRepoName)).
		Return(s.mockRateRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AffiliateCommissionRepoName)).
		Return(s.mockCommissionRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProductRepoName)).
		Return(s.mockProductRepo, nil).AnyTimes()

	commissionService, servErr := NewCommissionService(s.mockUOW, newTestLogger())
	s.Require().NoError(servErr)
	s.commissionService = commissionService
}

func (s *CommissionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// TestAttribute Заказ на 500 при уровнях {порог 0 - 5%} и {порог 1000 - 8%}
// дает комиссию 25 в статусе pending.
func (s *CommissionServiceTestSuite) TestAttribute() {
	orderAmount := decimal.NewFromInt(500)
	rate := decimal.NewFromInt(5)
	affiliate := &domain.User{ID: 7, IsAffiliate: true, AffiliateCode: "JOHN10"}

	s.mockUserRepo.EXPECT().
		FindAffiliateByCode(gomock.Any(), "JOHN10").
		Return(affiliate, nil)
	// Сумма 500 проходит только порог 0, уровень с порогом 1000 не участвует.
	s.mockRateRepo.EXPECT().
		FindBestForAmount(gomock.Any(), orderAmount).
		Return(&domain.CommissionRate{ID: 1, CommissionPercentage: rate, MinSalesAmount: decimal.Zero}, nil)

	s.mockCommissionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.AffiliateCommissionCreate) (*domain.AffiliateCommission, error) {
			s.Equal(affiliate.ID, args.AffiliateUserID)
			s.Equal("pi_1", args.OrderID)
			s.True(args.CommissionAmount.Equal(decimal.NewFromInt(25)),
				"want 25, got %s", args.CommissionAmount)
			s.True(args.CommissionRate.Equal(rate))
			return &domain.AffiliateCommission{
				ID:               1,
				Status:           domain.CommissionStatusPending,
				CommissionAmount: args.CommissionAmount,
			}, nil
		})

	err := s.commissionService.Attribute(context.Background(), AttributeArgs{
		OrderID:        "pi_1",
		OrderAmount:    orderAmount,
		ReferredUserID: 2,
		ReferralCode:   "JOHN10",
	})
	s.NoError(err)
}

func (s *CommissionServiceTestSuite) TestAttribute_EmptyReferralCode() {
	// Ни один репозиторий не должен дергаться.
	err := s.commissionService.Attribute(context.Background(), AttributeArgs{
		OrderID:     "pi_2",
		OrderAmount: decimal.NewFromInt(100),
	})
	s.NoError(err)
}

func (s *CommissionServiceTestSuite) TestAttribute_UnknownAffiliate() {
	s.mockUserRepo.EXPECT().
		FindAffiliateByCode(gomock.Any(), "GHOST").
		Return(nil, domain.ErrRecordNotFound)

	err := s.commissionService.Attribute(context.Background(), AttributeArgs{
		OrderID:      "pi_3",
		OrderAmount:  decimal.NewFromInt(100),
		ReferralCode: "GHOST",
	})
	s.NoError(err)
}

func (s *CommissionServiceTestSuite) TestAttribute_NoActiveRates() {
	s.mockUserRepo.EXPECT().
		FindAffiliateByCode(gomock.Any(), "JOHN10").
		Return(&domain.User{ID: 7, IsAffiliate: true}, nil)
	s.mockRateRepo.EXPECT().
		FindBestForAmount(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)
	s.mockRateRepo.EXPECT().
		FindEntryLevel(gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	err := s.commissionService.Attribute(context.Background(), AttributeArgs{
		OrderID:      "pi_4",
		OrderAmount:  decimal.NewFromInt(100),
		ReferralCode: "JOHN10",
	})
	s.NoError(err)
}

// TestAttribute_Duplicate Повторная атрибуция того же заказа не создает вторую
// комиссию и не считается ошибкой.
func (s *CommissionServiceTestSuite) TestAttribute_Duplicate() {
	s.mockUserRepo.EXPECT().
		FindAffiliateByCode(gomock.Any(), "JOHN10").
		Return(&domain.User{ID: 7, IsAffiliate: true}, nil)
	s.mockRateRepo.EXPECT().
		FindBestForAmount(gomock.Any(), gomock.Any()).
		Return(&domain.CommissionRate{CommissionPercentage: decimal.NewFromInt(5)}, nil)
	s.mockCommissionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	err := s.commissionService.Attribute(context.Background(), AttributeArgs{
		OrderID:      "pi_5",
		OrderAmount:  decimal.NewFromInt(100),
		ReferralCode: "JOHN10",
	})
	s.NoError(err)
}

// TestResolveRate_BelowAllThresholds Сумма ниже всех порогов получает уровень с
// наименьшим порогом.
func (s *CommissionServiceTestSuite) TestResolveRate_BelowAllThresholds() {
	amount := decimal.NewFromInt(50)
	s.mockRateRepo.EXPECT().
		FindBestForAmount(gomock.Any(), amount).
		Return(nil, domain.ErrRecordNotFound)
	s.mockRateRepo.EXPECT().
		FindEntryLevel(gomock.Any()).
		Return(&domain.CommissionRate{CommissionPercentage: decimal.NewFromInt(5)}, nil)

	rate, err := s.commissionService.ResolveRate(context.Background(), amount)
	s.Require().NoError(err)
	s.True(rate.Equal(decimal.NewFromInt(5)))
}

func (s *CommissionServiceTestSuite) TestResolveRate_NoActive() {
	s.mockRateRepo.EXPECT().
		FindBestForAmount(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)
	s.mockRateRepo.EXPECT().
		FindEntryLevel(gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.commissionService.ResolveRate(context.Background(), decimal.NewFromInt(100))
	s.ErrorIs(err, domain.ErrNoActiveRate)
}

func (s *CommissionServiceTestSuite) TestProductCommission() {
	product := &domain.Product{ID: 3, Price: decimal.NewFromInt(999)}
	s.mockProductRepo.EXPECT().GetByID(gomock.Any(), product.ID).Return(product, nil)
	s.mockRateRepo.EXPECT().
		FindBestForAmount(gomock.Any(), product.Price).
		Return(&domain.CommissionRate{CommissionPercentage: decimal.NewFromInt(8)}, nil)

	commission, err := s.commissionService.ProductCommission(context.Background(), product.ID)
	s.Require().NoError(err)
	s.True(commission.CommissionAmount.Equal(decimal.NewFromFloat(79.92)),
		"want 79.92, got %s", commission.CommissionAmount)
}

func (s *CommissionServiceTestSuite) TestUpdateCommissionStatus_Invalid() {
	err := s.commissionService.UpdateCommissionStatus(context.Background(), 1, "shipped")
	s.Error(err)
}
